// Package schema defines the declarative quote-type catalog: quote types,
// their ordered steps, and the typed fields each step collects. The catalog
// is plain data constructed once at startup and shared read-only; the flow
// controller and summary composer are driven entirely by it.
package schema

// FieldType identifies the input affordance a field renders with and the
// shape of the value it stores.
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldEmail     FieldType = "email"
	FieldPhone     FieldType = "phone"
	FieldDate      FieldType = "date"
	FieldSelect    FieldType = "select"
	FieldCheckbox  FieldType = "checkbox"
	FieldRadio     FieldType = "radio"
	FieldSection   FieldType = "section"
	FieldClaims    FieldType = "claims"
	FieldDrivers   FieldType = "drivers"
	FieldVehicles  FieldType = "vehicles"
	FieldCoverage  FieldType = "coverage"
	FieldHousehold FieldType = "household"
	FieldCurrency  FieldType = "currency"
	FieldPctOfBase FieldType = "percentage-currency"
)

// StepRole tags steps that carry behavior beyond rendering their fields.
// Dispatching on a role keeps the controller independent of display titles.
type StepRole string

const (
	RolePlain    StepRole = "plain"
	RoleClaims   StepRole = "claims"
	RoleDrivers  StepRole = "drivers"
	RoleVehicles StepRole = "vehicles"
	RoleCoverage StepRole = "coverage"
)

// Field is one named unit of user input within a step. Name doubles as the
// form-store key and must be unique across the whole quote type.
type Field struct {
	Name        string    `yaml:"name"`
	Label       string    `yaml:"label"`
	Type        FieldType `yaml:"type"`
	Required    bool      `yaml:"required,omitempty"`
	Options     []string  `yaml:"options,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty"`
	Group       string    `yaml:"group,omitempty"`
	Width       string    `yaml:"width,omitempty"`
	// BaseField names an earlier currency field that percentage-currency
	// fields derive their dollar amount from.
	BaseField  string  `yaml:"base_field,omitempty"`
	Percentage float64 `yaml:"percentage,omitempty"`
}

// Step is one page of the wizard. IDs are contiguous starting at 1.
type Step struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Role        StepRole `yaml:"role,omitempty"`
	Fields      []Field  `yaml:"fields"`
}

// FieldByName returns the field declared under name, if any.
func (s Step) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// QuoteType is one top-level product flow plus the constants its summary
// derivations use. The variation constants feed the placeholder premium
// formula and carry no actuarial meaning.
type QuoteType struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`

	BasePremium         int    `yaml:"base_premium"`
	VariationMultiplier int    `yaml:"variation_multiplier"`
	VariationModulus    int    `yaml:"variation_modulus"`
	TermMonths          int    `yaml:"term_months"`
	StartDateField      string `yaml:"start_date_field,omitempty"`
}

// Step returns the step with the given 1-based id.
func (q QuoteType) Step(id int) (Step, bool) {
	for _, s := range q.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

func (q QuoteType) StepCount() int {
	return len(q.Steps)
}

// FieldByName searches every step of the quote type.
func (q QuoteType) FieldByName(name string) (Field, bool) {
	for _, s := range q.Steps {
		if f, ok := s.FieldByName(name); ok {
			return f, true
		}
	}
	return Field{}, false
}

// SessionKey is the persistent-storage key for a quote type's session.
func (q QuoteType) SessionKey() string {
	return "quote-" + q.ID
}

// Catalog holds quote types in declaration order.
type Catalog struct {
	types map[string]QuoteType
	order []string
}

func NewCatalog(types ...QuoteType) *Catalog {
	c := &Catalog{types: make(map[string]QuoteType, len(types))}
	for _, qt := range types {
		c.Add(qt)
	}
	return c
}

// Add registers a quote type, replacing any previous entry with the same id.
func (c *Catalog) Add(qt QuoteType) {
	if _, exists := c.types[qt.ID]; !exists {
		c.order = append(c.order, qt.ID)
	}
	c.types[qt.ID] = qt
}

func (c *Catalog) Get(id string) (QuoteType, bool) {
	qt, ok := c.types[id]
	return qt, ok
}

// IDs returns quote type ids in declaration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}
