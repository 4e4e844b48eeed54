package catalog

import "github.com/mansoorceksport/kinetic/internal/domain"

const (
	bw   = domain.EquipmentBodyweight
	band = domain.EquipmentBand
	db   = domain.EquipmentDumbbell
)

// builtinExercises is the library shipped with the app. Order matters:
// it is the catalog order used by listings and filters.
var builtinExercises = []domain.Exercise{
	// Chest
	{ID: "pushup", Name: "Push-Up", Icon: "💪", Muscle: "Chest, triceps", Category: domain.CategoryChest, Equipment: bw, Trackable: true,
		Tip: "Body in one line from head to heels", Label: "PUSH-UP", Cue: "Lower chest to floor, then push up"},
	{ID: "widepushup", Name: "Wide Push-Up", Icon: "💪", Muscle: "Outer chest", Category: domain.CategoryChest, Equipment: bw, Trackable: true,
		Tip: "Hands wider than shoulders, elbows out at 45°", Label: "WIDE PUSH-UP", Cue: "Wide grip, lower chest fully"},
	{ID: "declinepushup", Name: "Decline Push-Up", Icon: "💪", Muscle: "Upper chest", Category: domain.CategoryChest, Equipment: bw,
		Tip: "Feet on a chair or step, brace the core"},
	{ID: "archerpushup", Name: "Archer Push-Up", Icon: "🏹", Muscle: "Chest, unilateral", Category: domain.CategoryChest, Equipment: bw,
		Tip: "Shift weight to one arm, keep the other straight"},
	{ID: "bandchestpress", Name: "Band Chest Press", Icon: "🎗️", Muscle: "Chest", Category: domain.CategoryChest, Equipment: band,
		Tip: "Anchor band behind you at chest height"},
	{ID: "bandfly", Name: "Band Chest Fly", Icon: "🎗️", Muscle: "Inner chest", Category: domain.CategoryChest, Equipment: band,
		Tip: "Soft elbows, hug a big tree"},
	{ID: "dbfloorpress", Name: "DB Floor Press", Icon: "🏋️", Muscle: "Chest, triceps", Category: domain.CategoryChest, Equipment: db,
		Tip: "Pause with triceps on the floor"},
	{ID: "dbfly", Name: "DB Floor Fly", Icon: "🏋️", Muscle: "Chest", Category: domain.CategoryChest, Equipment: db,
		Tip: "Arc the weights, do not press them"},

	// Back
	{ID: "pullup", Name: "Pull-Up", Icon: "🧗", Muscle: "Lats, biceps", Category: domain.CategoryBack, Equipment: bw,
		Tip: "Dead hang start, chin over the bar"},
	{ID: "chinup", Name: "Chin-Up", Icon: "🧗", Muscle: "Lats, biceps", Category: domain.CategoryBack, Equipment: bw,
		Tip: "Palms facing you, drive elbows down"},
	{ID: "superman", Name: "Superman Hold", Icon: "🦸", Muscle: "Lower back", Category: domain.CategoryBack, Equipment: bw,
		Tip: "Lift chest and thighs, squeeze glutes"},
	{ID: "tablerow", Name: "Table Row", Icon: "🪑", Muscle: "Upper back", Category: domain.CategoryBack, Equipment: bw,
		Tip: "Under a sturdy table, pull chest to the edge"},
	{ID: "bandrow", Name: "Band Seated Row", Icon: "🎗️", Muscle: "Mid back", Category: domain.CategoryBack, Equipment: band,
		Tip: "Loop band around feet, pull to the waist"},
	{ID: "bandpullapart", Name: "Band Pull-Apart", Icon: "🎗️", Muscle: "Rear delts, rhomboids", Category: domain.CategoryBack, Equipment: band,
		Tip: "Arms straight, squeeze shoulder blades"},
	{ID: "dbrow", Name: "DB Bent-Over Row", Icon: "🏋️", Muscle: "Lats, mid back", Category: domain.CategoryBack, Equipment: db,
		Tip: "Flat back, row to the hip"},
	{ID: "dbrenegaderow", Name: "DB Renegade Row", Icon: "🏋️", Muscle: "Back, core", Category: domain.CategoryBack, Equipment: db,
		Tip: "Feet wide, keep hips square"},

	// Shoulders
	{ID: "pikedpu", Name: "Pike Push-Up", Icon: "🔺", Muscle: "Shoulders", Category: domain.CategoryShoulders, Equipment: bw, Trackable: true,
		Tip: "Form an inverted V with the body", Label: "PIKE PUSH-UP", Cue: "Hips high, lower head toward floor"},
	{ID: "shouldertap", Name: "Plank Shoulder Tap", Icon: "🤚", Muscle: "Shoulders, core", Category: domain.CategoryShoulders, Equipment: bw,
		Tip: "Minimize hip sway"},
	{ID: "armcircles", Name: "Arm Circles", Icon: "⭕", Muscle: "Deltoids", Category: domain.CategoryShoulders, Equipment: bw,
		Tip: "Small controlled circles, both directions"},
	{ID: "bandshpress", Name: "Band Shoulder Press", Icon: "🎗️", Muscle: "Shoulders", Category: domain.CategoryShoulders, Equipment: band, Trackable: true,
		Tip: "Stand on the band, press overhead", Label: "BAND PRESS", Cue: "Full extension overhead"},
	{ID: "bandlatraise", Name: "Band Lateral Raise", Icon: "🎗️", Muscle: "Side delts", Category: domain.CategoryShoulders, Equipment: band,
		Tip: "Lead with the elbows"},
	{ID: "dbshpress", Name: "DB Shoulder Press", Icon: "🏋️", Muscle: "Shoulders, triceps", Category: domain.CategoryShoulders, Equipment: db, Trackable: true,
		Tip: "Ribs down, do not arch", Label: "DB PRESS", Cue: "Press to full extension overhead"},
	{ID: "dblatraise", Name: "DB Lateral Raise", Icon: "🏋️", Muscle: "Side delts", Category: domain.CategoryShoulders, Equipment: db,
		Tip: "Raise to shoulder height, no swinging"},

	// Arms
	{ID: "diapushup", Name: "Diamond Push-Up", Icon: "💎", Muscle: "Triceps", Category: domain.CategoryArms, Equipment: bw, Trackable: true,
		Tip: "Elbows stay close to the ribs", Label: "DIAMOND PU", Cue: "Hands diamond-shape under chest"},
	{ID: "dip", Name: "Tricep Dip", Icon: "🪑", Muscle: "Triceps", Category: domain.CategoryArms, Equipment: bw, Trackable: true,
		Tip: "Use a chair edge, shoulders down", Label: "TRICEP DIP", Cue: "Lower until elbows 90°, press up"},
	{ID: "bandcurl", Name: "Band Bicep Curl", Icon: "🎗️", Muscle: "Biceps", Category: domain.CategoryArms, Equipment: band, Trackable: true,
		Tip: "Elbows pinned to the sides", Label: "BAND CURL", Cue: "Full curl, control the lower"},
	{ID: "bandtriext", Name: "Band Tricep Extension", Icon: "🎗️", Muscle: "Triceps", Category: domain.CategoryArms, Equipment: band,
		Tip: "Anchor high, extend fully"},
	{ID: "dbcurl", Name: "DB Bicep Curl", Icon: "🏋️", Muscle: "Biceps", Category: domain.CategoryArms, Equipment: db, Trackable: true,
		Tip: "No swinging, supinate at the top", Label: "DB CURL", Cue: "Squeeze at top, control descent"},
	{ID: "dbhammer", Name: "DB Hammer Curl", Icon: "🔨", Muscle: "Biceps, forearms", Category: domain.CategoryArms, Equipment: db,
		Tip: "Neutral grip throughout"},
	{ID: "dbskullcrusher", Name: "DB Skull Crusher", Icon: "🏋️", Muscle: "Triceps", Category: domain.CategoryArms, Equipment: db,
		Tip: "Only the forearms move"},

	// Legs
	{ID: "squat", Name: "Bodyweight Squat", Icon: "🦵", Muscle: "Quads, glutes", Category: domain.CategoryLegs, Equipment: bw, Trackable: true,
		Tip: "Weight in the heels, chest proud", Label: "SQUAT", Cue: "Hips below parallel, drive through heels"},
	{ID: "sumoSq", Name: "Sumo Squat", Icon: "🦵", Muscle: "Inner thighs, glutes", Category: domain.CategoryLegs, Equipment: bw, Trackable: true,
		Tip: "Toes turned out 45°", Label: "SUMO SQUAT", Cue: "Wide stance, knees track toes"},
	{ID: "lunge", Name: "Reverse Lunge", Icon: "🚶", Muscle: "Quads, glutes", Category: domain.CategoryLegs, Equipment: bw, Trackable: true,
		Tip: "Step back, front shin vertical", Label: "LUNGE", Cue: "Back knee toward floor, stay upright"},
	{ID: "calfraise", Name: "Calf Raise", Icon: "🦶", Muscle: "Calves", Category: domain.CategoryLegs, Equipment: bw, Trackable: true,
		Tip: "Use a step for more range", Label: "CALF RAISE", Cue: "Full extension at top, lower slowly"},
	{ID: "jumpsquat", Name: "Jump Squat", Icon: "⚡", Muscle: "Quads, power", Category: domain.CategoryLegs, Equipment: bw,
		Tip: "Land soft, straight into the next rep"},
	{ID: "wallsit", Name: "Wall Sit", Icon: "🧱", Muscle: "Quads", Category: domain.CategoryLegs, Equipment: bw,
		Tip: "Thighs parallel, back flat on the wall"},
	{ID: "pistolsq", Name: "Pistol Squat", Icon: "🔫", Muscle: "Quads, balance", Category: domain.CategoryLegs, Equipment: bw,
		Tip: "Hold a door frame until balance builds"},
	{ID: "bandsquat", Name: "Band Squat", Icon: "🎗️", Muscle: "Quads, glutes", Category: domain.CategoryLegs, Equipment: band,
		Tip: "Band under feet, handles at shoulders"},
	{ID: "dbgobsq", Name: "DB Goblet Squat", Icon: "🏆", Muscle: "Quads, glutes", Category: domain.CategoryLegs, Equipment: db, Trackable: true,
		Tip: "Hold the dumbbell at the chest", Label: "GOBLET SQ", Cue: "Chest up, elbows inside knees"},
	{ID: "dblunge", Name: "DB Walking Lunge", Icon: "🏋️", Muscle: "Quads, glutes", Category: domain.CategoryLegs, Equipment: db,
		Tip: "Long steps, torso tall"},
	{ID: "dbthrusters", Name: "DB Thruster", Icon: "🚀", Muscle: "Legs, shoulders", Category: domain.CategoryLegs, Equipment: db,
		Tip: "Squat and press in one motion"},

	// Glutes
	{ID: "glutebridge", Name: "Glute Bridge", Icon: "🍑", Muscle: "Glutes, hamstrings", Category: domain.CategoryGlutes, Equipment: bw,
		Tip: "Drive through heels, squeeze at the top"},
	{ID: "donkeykick", Name: "Donkey Kick", Icon: "🫏", Muscle: "Glutes", Category: domain.CategoryGlutes, Equipment: bw,
		Tip: "Knee bent 90°, kick to the ceiling"},
	{ID: "firehydrant", Name: "Fire Hydrant", Icon: "🚒", Muscle: "Glute medius", Category: domain.CategoryGlutes, Equipment: bw,
		Tip: "Keep the pelvis level"},
	{ID: "bandwalk", Name: "Band Lateral Walk", Icon: "🎗️", Muscle: "Glute medius", Category: domain.CategoryGlutes, Equipment: band,
		Tip: "Band above knees, stay in a half squat"},
	{ID: "bandkickback", Name: "Band Glute Kickback", Icon: "🎗️", Muscle: "Glutes", Category: domain.CategoryGlutes, Equipment: band,
		Tip: "Do not arch the lower back"},
	{ID: "dbrdl", Name: "DB Romanian Deadlift", Icon: "🏋️", Muscle: "Hamstrings, glutes", Category: domain.CategoryGlutes, Equipment: db,
		Tip: "Hinge at the hips, soft knees"},
	{ID: "dbhipthrust", Name: "DB Hip Thrust", Icon: "🏋️", Muscle: "Glutes", Category: domain.CategoryGlutes, Equipment: db,
		Tip: "Shoulders on a bench, chin tucked"},
	{ID: "dbstepup", Name: "DB Step-Up", Icon: "🪜", Muscle: "Glutes, quads", Category: domain.CategoryGlutes, Equipment: db,
		Tip: "Push through the top foot only"},

	// Core
	{ID: "situp", Name: "Sit-Up", Icon: "🔥", Muscle: "Abs", Category: domain.CategoryCore, Equipment: bw, Trackable: true,
		Tip: "Feet anchored, exhale on the way up", Label: "SIT-UP", Cue: "Full range, touch chest to knees"},
	{ID: "plank", Name: "Plank", Icon: "🧘", Muscle: "Core", Category: domain.CategoryCore, Equipment: bw, Trackable: true, Timed: true,
		Tip: "Squeeze glutes and brace", Label: "PLANK", Cue: "Hips level with shoulders"},
	{ID: "legraise", Name: "Lying Leg Raise", Icon: "🦵", Muscle: "Lower abs", Category: domain.CategoryCore, Equipment: bw,
		Tip: "Press lower back into the floor"},
	{ID: "russiantwist", Name: "Russian Twist", Icon: "🌀", Muscle: "Obliques", Category: domain.CategoryCore, Equipment: bw,
		Tip: "Lean back, rotate from the ribs"},
	{ID: "bicyclecrunch", Name: "Bicycle Crunch", Icon: "🚲", Muscle: "Abs, obliques", Category: domain.CategoryCore, Equipment: bw,
		Tip: "Elbow to opposite knee, slow tempo"},
	{ID: "bandwoodchop", Name: "Band Woodchop", Icon: "🎗️", Muscle: "Obliques", Category: domain.CategoryCore, Equipment: band,
		Tip: "Pivot the back foot, arms long"},
	{ID: "bandpallof", Name: "Band Pallof Press", Icon: "🎗️", Muscle: "Anti-rotation core", Category: domain.CategoryCore, Equipment: band,
		Tip: "Resist the pull, press straight out"},
	{ID: "dbsidebend", Name: "DB Side Bend", Icon: "🏋️", Muscle: "Obliques", Category: domain.CategoryCore, Equipment: db,
		Tip: "Bend sideways only, no twisting"},
	{ID: "dbweightedcrunch", Name: "DB Weighted Crunch", Icon: "🏋️", Muscle: "Abs", Category: domain.CategoryCore, Equipment: db,
		Tip: "Hold the dumbbell on the chest"},

	// Cardio
	{ID: "jumpingjack", Name: "Jumping Jack", Icon: "⭐", Muscle: "Full body", Category: domain.CategoryCardio, Equipment: bw, Trackable: true,
		Tip: "Stay light on the balls of the feet", Label: "JUMP JACK", Cue: "Arms fully extend overhead"},
	{ID: "burpee", Name: "Burpee", Icon: "💥", Muscle: "Full body", Category: domain.CategoryCardio, Equipment: bw, Trackable: true,
		Tip: "Chest to floor, jump with hands overhead", Label: "BURPEE", Cue: "Full range: floor to jump"},
	{ID: "mountclimber", Name: "Mountain Climber", Icon: "⛰️", Muscle: "Core, cardio", Category: domain.CategoryCardio, Equipment: bw, Trackable: true,
		Tip: "Hips low, quick feet", Label: "MT CLIMBER", Cue: "Drive knees to chest alternating"},
	{ID: "highknees", Name: "High Knees", Icon: "🏃", Muscle: "Hip flexors, cardio", Category: domain.CategoryCardio, Equipment: bw,
		Tip: "Knees to hip height, pump the arms"},
	{ID: "boxjump", Name: "Box Jump", Icon: "📦", Muscle: "Legs, power", Category: domain.CategoryCardio, Equipment: bw,
		Tip: "Land softly, step down"},
	{ID: "dbswing", Name: "DB Swing", Icon: "🏋️", Muscle: "Posterior chain", Category: domain.CategoryCardio, Equipment: db,
		Tip: "Snap the hips, arms are just hooks"},
	{ID: "dbmanmaker", Name: "DB Man Maker", Icon: "🏋️", Muscle: "Full body", Category: domain.CategoryCardio, Equipment: db,
		Tip: "Push-up, row each side, clean and press"},
}
