package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"text/tabwriter"

	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/suggest"
	"github.com/spf13/cobra"
)

type suggestOptions struct {
	constraints domain.SuggestionConstraints
	seed        uint64
	asJSON      bool
}

func newSuggestCmd() *cobra.Command {
	opts := &suggestOptions{}
	def := domain.DefaultConstraints()
	var goal, equipment, focus, level, duration string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate a workout plan",
		Example: `  kinetic suggest --focus core --duration "20 MIN"
  kinetic suggest --goal strength --equipment dumbbells --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.constraints = domain.SuggestionConstraints{
				Goal:      domain.Goal(goal),
				Equipment: domain.EquipmentChoice(equipment),
				Focus:     domain.Focus(focus),
				Level:     domain.Level(level),
				Duration:  domain.Duration(duration),
			}
			return runSuggest(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&goal, "goal", string(def.Goal), "STRENGTH, HYPERTROPHY, ENDURANCE or FAT LOSS")
	f.StringVar(&equipment, "equipment", string(def.Equipment), "BODYWEIGHT, BANDS, DUMBBELLS or ALL")
	f.StringVar(&focus, "focus", string(def.Focus), "FULL BODY, UPPER, LOWER, PUSH, PULL or CORE")
	f.StringVar(&level, "level", string(def.Level), "BEGINNER, INTERMEDIATE or ADVANCED")
	f.StringVar(&duration, "duration", string(def.Duration), `"20 MIN", "30-45 MIN" or "60 MIN"`)
	f.Uint64Var(&opts.seed, "seed", 0, "shuffle seed for a reproducible plan (0 picks one at random)")
	f.BoolVar(&opts.asJSON, "json", false, "print the plan as JSON")
	return cmd
}

func runSuggest(out io.Writer, opts *suggestOptions) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var rnd suggest.RandomSource
	if opts.seed != 0 {
		rnd = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	result := suggest.NewEngine(cat, rnd).Generate(opts.constraints)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	rx := result.Prescription
	fmt.Fprintf(out, "%s\n", result.Title)
	fmt.Fprintf(out, "%d exercises · %d x %d · rest %s\n\n", len(result.Items), rx.Sets, rx.Reps, rx.Rest)
	if len(result.Items) == 0 {
		fmt.Fprintln(out, "No exercises match these constraints.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, item := range result.Items {
		ex := item.Exercise
		fmt.Fprintf(tw, "%d.\t%s %s\t%s\t%s\n", i+1, ex.Icon, ex.Name, ex.Category.Title(), ex.Equipment.Label())
	}
	return tw.Flush()
}
