package static

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.CatalogSource = (*Catalog)(nil)

// idNamespace scopes record UUIDs to this catalogue.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://seva.custodia-labs.dev/services"))

// RecordID derives the stable ID of a record from its state and name.
func RecordID(state domain.State, name string) string {
	return uuid.NewSHA1(idNamespace, []byte(state.String()+"/"+name)).String()
}

type entry struct {
	name        string
	category    domain.Category
	state       domain.State
	url         string
	description string
}

var entries = []entry{
	// Maharashtra
	{"Maharashtra Emergency", domain.CategoryEmergency, domain.StateMaharashtra,
		"https://www.maharashtra.gov.in/", "24/7 Emergency response services."},
	{"Maharashtra Women Safety", domain.CategoryWomenSafety, domain.StateMaharashtra,
		"https://mumbaipolice.gov.in/WomenSafety", "Safety resources for women in Maharashtra."},
	{"Maharashtra Police", domain.CategoryPublicSafety, domain.StateMaharashtra,
		"https://www.maharashtrapolice.gov.in/", "Report civic and public safety issues to the state police."},
	{"MAHA-IT Portal", domain.CategoryDocuments, domain.StateMaharashtra,
		"https://www.mahaonline.gov.in/", "Apply for certificates and documents online."},
	{"Maharashtra Pollution Control Board", domain.CategoryEnvironmental, domain.StateMaharashtra,
		"https://www.mpcb.gov.in/", "Lodge air, water and noise pollution complaints."},
	{"Maharashtra Transport", domain.CategoryTraffic, domain.StateMaharashtra,
		"https://mahatranscom.in/", "Transport department services and licences."},

	// Karnataka
	{"Karnataka Emergency", domain.CategoryEmergency, domain.StateKarnataka,
		"https://www.karnataka.gov.in/", "State emergency contact portal."},
	{"Karnataka Women Safety", domain.CategoryWomenSafety, domain.StateKarnataka,
		"https://ksp.karnataka.gov.in/page/Women+Safety/en", "Dedicated safety portal for women."},
	{"Karnataka State Police", domain.CategoryPublicSafety, domain.StateKarnataka,
		"https://ksp.karnataka.gov.in/", "Public safety services from Karnataka State Police."},
	{"Sakala Services", domain.CategoryDocuments, domain.StateKarnataka,
		"https://www.sakala.kar.nic.in/", "Time-bound delivery of government services."},
	{"Karnataka Pollution Control Board", domain.CategoryEnvironmental, domain.StateKarnataka,
		"https://kspcb.karnataka.gov.in/", "Environmental complaints and clearances."},
	{"Karnataka Transport", domain.CategoryTraffic, domain.StateKarnataka,
		"https://transport.karnataka.gov.in/", "Transport department services and licences."},

	// Delhi
	{"Delhi Emergency", domain.CategoryEmergency, domain.StateDelhi,
		"https://delhi.gov.in/", "Central emergency services for the capital."},
	{"Delhi Women Safety", domain.CategoryWomenSafety, domain.StateDelhi,
		"https://www.delhipolice.nic.in/", "Delhi Police women safety initiatives."},
	{"Delhi Police", domain.CategoryPublicSafety, domain.StateDelhi,
		"https://www.delhipolice.nic.in/", "Report civic and public safety issues in Delhi."},
	{"e-District Delhi", domain.CategoryDocuments, domain.StateDelhi,
		"https://edistrict.delhigovt.nic.in/", "Online gateway for Delhi government services."},
	{"Delhi Pollution Control Committee", domain.CategoryEnvironmental, domain.StateDelhi,
		"https://dpcc.delhigovt.nic.in/", "Air quality updates and pollution complaints."},
	{"Delhi Traffic Police", domain.CategoryTraffic, domain.StateDelhi,
		"https://traffic.delhipolice.nic.in/", "Challans, advisories and traffic complaints."},

	// Other states
	{"Gujarat State Portal", domain.CategoryPublicSafety, domain.StateGujarat,
		"https://gujaratindia.gov.in/", "Official Gujarat government portal."},
	{"TN e-Sevai", domain.CategoryDocuments, domain.StateTamilNadu,
		"https://www.tnesevai.tn.gov.in/", "Tamil Nadu e-Governance services."},
	{"UP e-District", domain.CategoryDocuments, domain.StateUttarPradesh,
		"https://edistrict.up.gov.in/", "Uttar Pradesh digital services portal."},
	{"WB State Portal", domain.CategoryPublicSafety, domain.StateWestBengal,
		"https://www.wb.gov.in/", "Official West Bengal government portal."},
}

// recognisedStates are offered in state pickers.
var recognisedStates = []domain.State{
	domain.StateMaharashtra,
	domain.StateKarnataka,
	domain.StateDelhi,
	domain.StateGujarat,
	domain.StateTamilNadu,
	domain.StateUttarPradesh,
	domain.StateWestBengal,
}

var helplines = []domain.Helpline{
	{Name: "Police", Number: "100", Group: domain.CategoryEmergency},
	{Name: "Fire Brigade", Number: "101", Group: domain.CategoryEmergency},
	{Name: "Ambulance", Number: "102", Group: domain.CategoryEmergency},
	{Name: "Disaster", Number: "108", Group: domain.CategoryEmergency},
	{Name: "Women Helpline", Number: "1091", Group: domain.CategoryWomenSafety},
	{Name: "Child Support", Number: "1098", Group: domain.CategoryWomenSafety},
	{Name: "Domestic Violence", Number: "181", Group: domain.CategoryWomenSafety},
	{Name: "Cyber Crime", Number: "1930", Group: domain.CategoryPublicSafety},
}

// Catalog serves the compiled-in table.
type Catalog struct {
	records []domain.ServiceRecord
}

// NewCatalog builds the catalogue from the literal table.
func NewCatalog() *Catalog {
	records := make([]domain.ServiceRecord, len(entries))
	for i, e := range entries {
		records[i] = domain.ServiceRecord{
			ID:          RecordID(e.state, e.name),
			Name:        e.name,
			Category:    e.category,
			State:       e.state,
			URL:         e.url,
			Description: e.description,
		}
	}
	return &Catalog{records: records}
}

// Services returns a copy of every record in insertion order.
func (c *Catalog) Services() []domain.ServiceRecord {
	out := make([]domain.ServiceRecord, len(c.records))
	copy(out, c.records)
	return out
}

// States returns a copy of the recognised states.
func (c *Catalog) States() []domain.State {
	out := make([]domain.State, len(recognisedStates))
	copy(out, recognisedStates)
	return out
}

// Helplines returns a copy of the quick-dial numbers.
func (c *Catalog) Helplines() []domain.Helpline {
	out := make([]domain.Helpline, len(helplines))
	copy(out, helplines)
	return out
}
