package instrument

// WURSIDs are the 25 childhood-recall question ids.
var WURSIDs = idRange(1, 25)

const wursInstruction = "Think back to when you were 7 to 10 years old and answer as honestly as you can. " +
	"If you cannot remember, stories from parents or siblings may help; choose \"Not at all\" when nothing comes to mind."

var wursOptions = []Option{
	{Value: "0", Label: "Not at all"},
	{Value: "1", Label: "Mildly"},
	{Value: "2", Label: "Moderately"},
	{Value: "3", Label: "Quite a bit"},
	{Value: "4", Label: "Very much"},
}

var wursItems = []Item{
	{ID: 1, Category: "attention", Text: "Concentration problems, easily distracted"},
	{ID: 2, Category: "emotion", Text: "Anxious, worrying"},
	{ID: 3, Category: "hyperactivity", Text: "Nervous, fidgety"},
	{ID: 4, Category: "attention", Text: "Inattentive, daydreaming"},
	{ID: 5, Category: "emotion", Text: "Hot- or short-tempered"},
	{ID: 6, Category: "emotion", Text: "Sad or blue, depressed"},
	{ID: 7, Category: "emotion", Text: "Moody, ups and downs"},
	{ID: 8, Category: "emotion", Text: "Angry, temper outbursts"},
	{ID: 9, Category: "behavior", Text: "Stubborn, strong-willed"},
	{ID: 10, Category: "emotion", Text: "Unhappy"},
	{ID: 11, Category: "behavior", Text: "Disobedient with parents, rebellious"},
	{ID: 12, Category: "emotion", Text: "Low opinion of myself"},
	{ID: 13, Category: "emotion", Text: "Irritable"},
	{ID: 14, Category: "emotion", Text: "Mood changes often"},
	{ID: 15, Category: "emotion", Text: "Trouble controlling anger"},
	{ID: 16, Category: "impulsivity", Text: "Acting without thinking, impulsive"},
	{ID: 17, Category: "hyperactivity", Text: "Overly active, could not sit still"},
	{ID: 18, Category: "academic", Text: "Poor grades or learning problems"},
	{ID: 19, Category: "academic", Text: "Trouble fitting in at school"},
	{ID: 20, Category: "social", Text: "Trouble getting along with other children"},
	{ID: 21, Category: "social", Text: "Teased or bullied"},
	{ID: 22, Category: "behavior", Text: "Antisocial behavior (lying, fights)"},
	{ID: 23, Category: "social", Text: "Fighting with siblings or friends"},
	{ID: 24, Category: "attention", Text: "Disorganized"},
	{ID: 25, Category: "attention", Text: "Trouble finishing things"},
}

var wursCategories = []Category{
	{Key: "attention", Label: "Attention", Icon: "🎯", ItemIDs: []int{1, 4, 24, 25}},
	{Key: "hyperactivity", Label: "Hyperactivity", Icon: "⚡", ItemIDs: []int{3, 17}},
	{Key: "impulsivity", Label: "Impulsivity", Icon: "🚀", ItemIDs: []int{16}},
	{Key: "emotion", Label: "Emotion regulation", Icon: "💭", ItemIDs: []int{2, 5, 6, 7, 8, 10, 12, 13, 14, 15}},
	{Key: "behavior", Label: "Behavior", Icon: "🎭", ItemIDs: []int{9, 11, 22}},
	{Key: "social", Label: "Social", Icon: "👥", ItemIDs: []int{20, 21, 23}},
	{Key: "academic", Label: "Academic", Icon: "📚", ItemIDs: []int{18, 19}},
}
