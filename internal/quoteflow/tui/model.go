// Package tui is the terminal wizard: a home screen for picking a quote
// type, one screen per schema step, and the summary screen with the quote.
package tui

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pnanji/quoteflow/internal/quoteflow/archive"
	"github.com/pnanji/quoteflow/internal/quoteflow/config"
	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/flow"
	"github.com/pnanji/quoteflow/internal/quoteflow/project"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
	"github.com/pnanji/quoteflow/internal/quoteflow/summary"
)

type Screen int

const (
	ScreenHome Screen = iota
	ScreenStep
	ScreenSummary
)

// summary screen actions, in display order
const (
	actionEdit = iota
	actionStartOver
	actionFinish
	actionCount
)

type fieldEditor struct {
	field  schema.Field
	input  textinput.Model
	entity *entityEditor
}

type Model struct {
	root    string
	cfg     config.Config
	catalog *schema.Catalog
	keys    KeyMap

	screen  Screen
	homeIdx int

	ctrl    *flow.Controller
	pos     flow.Position
	step    schema.Step
	editors []*fieldEditor
	focus   int
	errs    []string

	summaryIdx int
	status     string

	width  int
	height int
}

func New(root string, cfg config.Config, catalog *schema.Catalog) Model {
	return Model{
		root:    root,
		cfg:     cfg,
		catalog: catalog,
		keys:    NewKeyMap(),
		screen:  ScreenHome,
	}
}

// Run starts the wizard, optionally jumping straight into a quote type.
func Run(root string, cfg config.Config, catalog *schema.Catalog) error {
	m := New(root, cfg, catalog)
	if cfg.DefaultQuoteType != "" {
		if qt, ok := catalog.Get(cfg.DefaultQuoteType); ok {
			m.openWizard(qt)
		}
	}
	_, err := tea.NewProgram(&m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case ScreenHome:
			return m, m.updateHome(msg)
		case ScreenStep:
			return m, m.updateStep(msg)
		case ScreenSummary:
			return m, m.updateSummary(msg)
		}
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	ids := m.catalog.IDs()
	switch {
	case keyIs(msg, m.keys.NavUp):
		if m.homeIdx > 0 {
			m.homeIdx--
		}
	case keyIs(msg, m.keys.NavDown):
		if m.homeIdx < len(ids)-1 {
			m.homeIdx++
		}
	case keyIs(msg, m.keys.Select):
		if qt, ok := m.catalog.Get(ids[m.homeIdx]); ok {
			m.openWizard(qt)
		}
	case msg.String() == "r":
		if qt, ok := m.catalog.Get(ids[m.homeIdx]); ok {
			st := store.Open(m.persister(), qt.SessionKey())
			st.Clear()
			m.status = qt.Name + " session cleared"
		}
	case keyIs(msg, m.keys.Back), msg.String() == "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) persister() store.Persister {
	return store.NewFilePersister(project.SessionsDir(m.root))
}

func (m *Model) openWizard(qt schema.QuoteType) {
	st := store.Open(m.persister(), qt.SessionKey())
	m.ctrl = flow.New(qt, st)
	if m.cfg.EstimateSeed != 0 {
		m.ctrl.Seed(m.cfg.EstimateSeed)
	}
	m.pos = m.ctrl.Start()
	m.errs = nil
	m.status = ""
	m.screen = ScreenStep
	m.loadStep()
}

// loadStep rebuilds the editors for the current position and runs the
// step's entry hooks: defaults and primary-driver sync.
func (m *Model) loadStep() {
	step, err := m.ctrl.Step(m.pos)
	if err != nil {
		m.errs = []string{err.Error()}
		m.screen = ScreenHome
		return
	}
	m.step = step
	m.ctrl.ApplyStepDefaults(step)
	if step.Role == schema.RoleDrivers {
		m.syncPrimaryDriver()
	}
	if step.Role == schema.RoleVehicles {
		m.seedHouseholdVehicles()
	}

	st := m.ctrl.Store()
	m.editors = m.editors[:0]
	for _, f := range step.Fields {
		m.editors = append(m.editors, m.newEditor(f, st))
	}
	m.focus = 0
	m.focusFirst()
}

func (m *Model) newEditor(f schema.Field, st *store.Store) *fieldEditor {
	fe := &fieldEditor{field: f}
	switch f.Type {
	case schema.FieldClaims, schema.FieldDrivers, schema.FieldVehicles,
		schema.FieldCoverage, schema.FieldHousehold:
		fe.entity = newEntityEditor(f, st, m.keys)
	case schema.FieldText, schema.FieldEmail, schema.FieldPhone,
		schema.FieldDate, schema.FieldCurrency:
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 128
		ti.SetValue(st.Get(f.Name))
		fe.input = ti
	}
	return fe
}

func (m *Model) syncPrimaryDriver() {
	st := m.ctrl.Store()
	drivers, err := entities.DecodeDrivers(st.Get("drivers"))
	if err != nil {
		drivers = nil
	}
	primary := entities.PrimaryApplicant{
		FirstName:     st.Get("firstName"),
		LastName:      st.Get("lastName"),
		DateOfBirth:   st.Get("dateOfBirth"),
		Gender:        st.Get("gender"),
		MaritalStatus: st.Get("maritalStatus"),
		State:         st.Get("state"),
		LicenseNumber: st.Get("licenseNumber"),
	}
	st.Update(map[string]any{"drivers": entities.EncodeDrivers(entities.SeedPrimaryDriver(drivers, primary))})
}

// seedHouseholdVehicles copies roster vehicles the applicant checked on the
// drivers step into the vehicle list, once each.
func (m *Model) seedHouseholdVehicles() {
	st := m.ctrl.Store()
	vehicles, err := entities.DecodeVehicles(st.Get("vehicles"))
	if err != nil {
		vehicles = nil
	}
	have := map[string]bool{}
	for _, v := range vehicles {
		have[v.ID] = true
	}
	added := false
	for _, hv := range entities.SelectedHouseholdVehicles(st) {
		if have[hv.ID] {
			continue
		}
		vehicles = append(vehicles, entities.Vehicle{
			ID:        hv.ID,
			VIN:       hv.VIN,
			ModelYear: strconv.Itoa(hv.Year),
			Make:      hv.Make,
			Model:     hv.Model,
		})
		added = true
	}
	if added {
		st.Update(map[string]any{"vehicles": entities.EncodeVehicles(vehicles)})
	}
}

func (m *Model) focusFirst() {
	for i, fe := range m.editors {
		if m.focusable(fe.field) {
			m.focus = i
			m.setInputFocus()
			return
		}
	}
}

// focusable reports whether a field can hold focus. Section headers never
// can, and the claims editor only while its gate answer is affirmative.
func (m *Model) focusable(f schema.Field) bool {
	if f.Type == schema.FieldSection {
		return false
	}
	if f.Type == schema.FieldClaims && m.ctrl.Store().Get(entities.ClaimsGateField) != entities.ClaimsGateYes {
		return false
	}
	return true
}

func (m *Model) setInputFocus() {
	for i := range m.editors {
		if m.editors[i].input.Focused() {
			m.editors[i].input.Blur()
		}
	}
	fe := m.editors[m.focus]
	if textual(fe.field.Type) {
		fe.input.Focus()
	}
}

func textual(t schema.FieldType) bool {
	switch t {
	case schema.FieldText, schema.FieldEmail, schema.FieldPhone,
		schema.FieldDate, schema.FieldCurrency:
		return true
	}
	return false
}

func (m *Model) updateStep(msg tea.KeyMsg) tea.Cmd {
	fe := m.editors[m.focus]
	if fe.entity != nil && m.focusable(fe.field) && fe.entity.handleKey(msg) {
		return nil
	}

	switch {
	case keyIs(msg, m.keys.Next):
		m.advance()
		return nil
	case keyIs(msg, m.keys.Back):
		m.retreat()
		return nil
	case keyIs(msg, m.keys.NavUp):
		m.moveFocus(-1)
		return nil
	case keyIs(msg, m.keys.NavDown):
		m.moveFocus(1)
		return nil
	case keyIs(msg, m.keys.Estimate):
		if _, ok := m.step.FieldByName("dwellingLimit"); ok {
			estimate := m.ctrl.EstimateBaseValue()
			m.status = "Estimated dwelling limit " + estimate
			m.reloadInputs()
		}
		return nil
	}

	switch fe.field.Type {
	case schema.FieldSelect, schema.FieldRadio, schema.FieldPctOfBase:
		switch {
		case keyIs(msg, m.keys.Left):
			m.commitOption(fe, -1)
		case keyIs(msg, m.keys.Right), keyIs(msg, m.keys.Select), keyIs(msg, m.keys.Toggle):
			m.commitOption(fe, 1)
		}
	case schema.FieldCheckbox:
		if keyIs(msg, m.keys.Toggle) || keyIs(msg, m.keys.Select) {
			st := m.ctrl.Store()
			st.Update(map[string]any{fe.field.Name: !st.GetBool(fe.field.Name)})
		}
	default:
		if textual(fe.field.Type) {
			var cmd tea.Cmd
			fe.input, cmd = fe.input.Update(msg)
			m.ctrl.Store().Update(map[string]any{fe.field.Name: fe.input.Value()})
			return cmd
		}
	}
	return nil
}

// commitOption cycles an option field and handles the claims gate: flipping
// it off clears the claims list immediately.
func (m *Model) commitOption(fe *fieldEditor, delta int) {
	st := m.ctrl.Store()
	next := cycleOption(fe.field.Options, st.Get(fe.field.Name), delta)
	update := map[string]any{fe.field.Name: next}
	if fe.field.Name == entities.ClaimsGateField && next != entities.ClaimsGateYes {
		update["claims"] = entities.EncodeClaims(nil)
	}
	st.Update(update)
}

func (m *Model) reloadInputs() {
	st := m.ctrl.Store()
	for _, fe := range m.editors {
		if textual(fe.field.Type) {
			fe.input.SetValue(st.Get(fe.field.Name))
		}
	}
}

func (m *Model) moveFocus(delta int) {
	i := m.focus
	for {
		i += delta
		if i < 0 || i >= len(m.editors) {
			return
		}
		if m.focusable(m.editors[i].field) {
			m.focus = i
			m.setInputFocus()
			return
		}
	}
}

func (m *Model) advance() {
	next, msgs := m.ctrl.Next(m.pos)
	m.errs = msgs
	if len(msgs) > 0 {
		return
	}
	m.status = ""
	if next == flow.Summary {
		m.pos = next
		m.summaryIdx = actionEdit
		m.screen = ScreenSummary
		return
	}
	m.pos = next
	m.loadStep()
}

func (m *Model) retreat() {
	m.errs = nil
	prev := m.ctrl.Previous(m.pos)
	if prev == flow.ExitHome {
		m.screen = ScreenHome
		return
	}
	m.pos = prev
	m.loadStep()
}

func (m *Model) updateSummary(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keyIs(msg, m.keys.Left):
		if m.summaryIdx > 0 {
			m.summaryIdx--
		}
	case keyIs(msg, m.keys.Right), keyIs(msg, m.keys.NavDown):
		if m.summaryIdx < actionCount-1 {
			m.summaryIdx++
		}
	case keyIs(msg, m.keys.Back):
		m.pos = m.ctrl.Previous(flow.Summary)
		m.screen = ScreenStep
		m.loadStep()
	case keyIs(msg, m.keys.Select):
		switch m.summaryIdx {
		case actionEdit:
			m.pos = 1
			m.screen = ScreenStep
			m.loadStep()
		case actionStartOver:
			m.ctrl.Store().Clear()
			m.screen = ScreenHome
		case actionFinish:
			m.finish()
			return tea.Quit
		}
	}
	return nil
}

// finish archives the completed quote. Archive failures are logged, never
// fatal: the applicant still gets their summary.
func (m *Model) finish() {
	qt := m.ctrl.QuoteType()
	st := m.ctrl.Store()
	pricing := summary.Premium(qt, st)
	start, end := summary.Term(qt, st, time.Now())

	db, err := archive.Open(project.ArchivePath(m.root))
	if err != nil {
		slog.Warn("open archive", "error", err)
		return
	}
	defer db.Close()
	if err := archive.Migrate(db); err != nil {
		slog.Warn("migrate archive", "error", err)
		return
	}
	if _, err := archive.Insert(db, qt.ID, pricing.Annual, start, end); err != nil {
		slog.Warn("archive quote", "error", err)
	}
}

func keyIs(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
