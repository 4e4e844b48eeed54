package suggest

import "github.com/mansoorceksport/kinetic/internal/domain"

// Unknown inputs fall through to the documented defaults:
// count 7, HYPERTROPHY prescription, FULL BODY categories, no equipment filter.

func targetCount(d domain.Duration) int {
	switch d {
	case domain.Duration20:
		return 4
	case domain.Duration3045:
		return 7
	case domain.Duration60:
		return 10
	default:
		return 7
	}
}

func prescriptionFor(g domain.Goal) domain.Prescription {
	switch g {
	case domain.GoalStrength:
		return domain.Prescription{Sets: 4, Reps: 5, Rest: "3 min"}
	case domain.GoalEndurance:
		return domain.Prescription{Sets: 3, Reps: 20, Rest: "45 sec"}
	case domain.GoalFatLoss:
		return domain.Prescription{Sets: 4, Reps: 15, Rest: "30 sec"}
	case domain.GoalHypertrophy:
		fallthrough
	default:
		return domain.Prescription{Sets: 3, Reps: 10, Rest: "90 sec"}
	}
}

func focusCategories(f domain.Focus) []domain.Category {
	switch f {
	case domain.FocusUpper:
		return []domain.Category{domain.CategoryChest, domain.CategoryBack, domain.CategoryShoulders, domain.CategoryArms, domain.CategoryCore}
	case domain.FocusLower:
		return []domain.Category{domain.CategoryLegs, domain.CategoryGlutes, domain.CategoryCore}
	case domain.FocusPush:
		return []domain.Category{domain.CategoryChest, domain.CategoryShoulders, domain.CategoryArms, domain.CategoryLegs}
	case domain.FocusPull:
		return []domain.Category{domain.CategoryBack, domain.CategoryArms, domain.CategoryCore}
	case domain.FocusCore:
		return []domain.Category{domain.CategoryCore, domain.CategoryCardio}
	case domain.FocusFullBody:
		fallthrough
	default:
		return []domain.Category{
			domain.CategoryChest, domain.CategoryBack, domain.CategoryShoulders, domain.CategoryArms,
			domain.CategoryLegs, domain.CategoryGlutes, domain.CategoryCore,
		}
	}
}

// equipmentFilter returns the equipment code to keep, or false for no filter
func equipmentFilter(e domain.EquipmentChoice) (domain.Equipment, bool) {
	switch e {
	case domain.EquipmentChoiceBodyweight:
		return domain.EquipmentBodyweight, true
	case domain.EquipmentChoiceBands:
		return domain.EquipmentBand, true
	case domain.EquipmentChoiceDumbbells:
		return domain.EquipmentDumbbell, true
	default:
		return "", false
	}
}

// beginnerExcluded holds movements too demanding for BEGINNER suggestions
var beginnerExcluded = map[string]struct{}{
	"pistolsq":     {},
	"pullup":       {},
	"chinup":       {},
	"archerpushup": {},
	"dbmanmaker":   {},
	"dbthrusters":  {},
	"boxjump":      {},
}
