package instrument

// ASRS scoring groups. Part A/B and the two subtype groups slice the same 18
// items along different axes.
var (
	ASRSPartA         = idRange(1, 6)
	ASRSPartB         = idRange(7, 18)
	ASRSInattention   = idRange(1, 9)
	ASRSHyperactivity = idRange(10, 18)
)

const asrsInstruction = "The following questions ask how you have felt and behaved over the past 6 months. " +
	"Choose the answer that best describes you."

var asrsOptions = []Option{
	{Value: "0", Label: "Never"},
	{Value: "1", Label: "Rarely"},
	{Value: "2", Label: "Sometimes"},
	{Value: "3", Label: "Often"},
	{Value: "4", Label: "Very often"},
}

var asrsItems = []Item{
	{ID: 1, Part: "A", Category: "inattention", Text: "How often do you fail to give close attention to details or make careless mistakes?"},
	{ID: 2, Part: "A", Category: "inattention", Text: "How often do you have difficulty keeping your attention on a task (conversations, reading, long assignments)?"},
	{ID: 3, Part: "A", Category: "inattention", Text: "How often do you seem not to listen when someone speaks to you directly?"},
	{ID: 4, Part: "A", Category: "inattention", Text: "How often do you fail to follow through on instructions or leave tasks unfinished?"},
	{ID: 5, Part: "A", Category: "inattention", Text: "How often do you have difficulty organizing tasks that require structure (reports, paperwork, deadlines)?"},
	{ID: 6, Part: "A", Category: "inattention", Text: "How often do you avoid or delay work that needs sustained mental effort?"},
	{ID: 7, Part: "B", Category: "inattention", Text: "How often do you lose things you need for tasks (keys, wallet, documents, glasses, phone)?"},
	{ID: 8, Part: "B", Category: "inattention", Text: "How often are you easily distracted by activity or noise around you?"},
	{ID: 9, Part: "B", Category: "inattention", Text: "How often do you forget daily obligations (appointments, paying bills)?"},
	{ID: 10, Part: "B", Category: "hyperactivity", Text: "How often do you fidget or squirm with your hands or feet while seated?"},
	{ID: 11, Part: "B", Category: "hyperactivity", Text: "How often do you leave your seat when you are expected to stay seated (meetings, lectures)?"},
	{ID: 12, Part: "B", Category: "hyperactivity", Text: "How often do you feel restless or find it hard to stay still?"},
	{ID: 13, Part: "B", Category: "hyperactivity", Text: "How often do you have difficulty unwinding or enjoying leisure time quietly?"},
	{ID: 14, Part: "B", Category: "hyperactivity", Text: "How often do you feel driven by a motor, uncomfortable being still for long?"},
	{ID: 15, Part: "B", Category: "impulsivity", Text: "How often do you find yourself talking too much?"},
	{ID: 16, Part: "B", Category: "impulsivity", Text: "How often do you answer before a question has been finished?"},
	{ID: 17, Part: "B", Category: "impulsivity", Text: "How often do you have difficulty waiting your turn?"},
	{ID: 18, Part: "B", Category: "impulsivity", Text: "How often do you interrupt or intrude on others (conversations, games)?"},
}

var asrsCategories = []Category{
	{
		Key:         "inattention",
		Label:       "Inattention",
		Description: "Focus, sustained attention and organization",
		Icon:        "🎯",
		ItemIDs:     idRange(1, 9),
	},
	{
		Key:         "hyperactivity",
		Label:       "Hyperactivity",
		Description: "Restlessness, difficulty staying still",
		Icon:        "⚡",
		ItemIDs:     idRange(10, 14),
	},
	{
		Key:         "impulsivity",
		Label:       "Impulsivity",
		Description: "Impatience, acting before thinking",
		Icon:        "🚀",
		ItemIDs:     idRange(15, 18),
	},
}
