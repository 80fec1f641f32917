package instrument

// Life domains of the impairment items, keyed by item id.
const (
	DomainAcademicWork = "academic_work"
	DomainRelationship = "relationship"
	DomainDailyLife    = "daily_life"
)

// ImpairmentIDs are the three impairment question ids.
var ImpairmentIDs = []int{1, 2, 3}

const impairmentInstruction = "Because of the symptoms you just described, do you keep running into the following difficulties in your actual life?"

var impairmentOptions = []Option{
	{Value: "yes", Label: "Yes"},
	{Value: "no", Label: "No"},
}

var impairmentItems = []Item{
	{ID: 1, Part: DomainAcademicWork, Category: "Study / work", Text: "Is your performance at school or work markedly below expectations, or do you struggle seriously to reach your potential?"},
	{ID: 2, Part: DomainRelationship, Category: "Relationships", Text: "Do serious problems keep recurring when starting or keeping relationships with family, friends or partners?"},
	{ID: 3, Part: DomainDailyLife, Category: "Daily life", Text: "Do you have major difficulty managing your own life: punctuality, money, chores, deadlines?"},
}
