package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/summary"
)

func (m *Model) View() string {
	switch m.screen {
	case ScreenStep:
		return m.viewStep()
	case ScreenSummary:
		return m.viewSummary()
	default:
		return m.viewHome()
	}
}

func (m *Model) viewHome() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Quoteflow") + "\n")
	b.WriteString(SubtitleStyle.Render("Start a new quote or resume where you left off") + "\n\n")

	for i, id := range m.catalog.IDs() {
		qt, ok := m.catalog.Get(id)
		if !ok {
			continue
		}
		line := qt.Name
		if m.sessionInProgress(qt) {
			line += "  " + SubtitleStyle.Render("(in progress)")
		}
		if i == m.homeIdx {
			b.WriteString(SelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(UnselectedStyle.Render("  "+line) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + SubtitleStyle.Render(m.status) + "\n")
	}
	for _, e := range m.errs {
		b.WriteString("\n" + ErrorStyle.Render(e) + "\n")
	}
	b.WriteString("\n" + m.helpLine([][2]string{
		{"enter", "start"}, {"r", "reset session"}, {"q", "quit"},
	}))
	return b.String()
}

func (m *Model) sessionInProgress(qt schema.QuoteType) bool {
	raw, err := m.persister().Load(qt.SessionKey())
	return err == nil && len(raw) > 0
}

func (m *Model) viewStep() string {
	qt := m.ctrl.QuoteType()
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(m.pos), qt.StepCount(), m.step.Title)) + "\n")
	if m.step.Description != "" {
		b.WriteString(SubtitleStyle.Render(m.step.Description) + "\n")
	}
	b.WriteString("\n")

	for _, e := range m.errs {
		b.WriteString(ErrorStyle.Render("• "+e) + "\n")
	}
	if len(m.errs) > 0 {
		b.WriteString("\n")
	}

	group := ""
	for i, fe := range m.editors {
		if m.cfg.Display.ShowGroupLabels && fe.field.Group != "" && fe.field.Group != group {
			group = fe.field.Group
			b.WriteString(SubtitleStyle.Render("· "+group) + "\n")
		}
		b.WriteString(m.viewField(fe, i == m.focus))
	}

	if m.status != "" {
		b.WriteString("\n" + SubtitleStyle.Render(m.status) + "\n")
	}

	help := [][2]string{{"ctrl+n", "next step"}, {"esc", "back"}, {"up/down", "move"}}
	if _, ok := m.step.FieldByName("dwellingLimit"); ok {
		help = append(help, [2]string{"ctrl+e", "estimate"})
	}
	if m.step.Role != schema.RolePlain {
		help = append(help, [2]string{"ctrl+a", "add"}, [2]string{"ctrl+x", "remove"}, [2]string{"enter", "expand"})
	}
	b.WriteString("\n" + m.helpLine(help))
	return b.String()
}

func (m *Model) viewField(fe *fieldEditor, focused bool) string {
	f := fe.field
	label := f.Label
	if f.Required {
		label += " *"
	}
	style := LabelStyle
	if focused {
		style = FocusedStyle
	}

	switch f.Type {
	case schema.FieldSection:
		return "\n" + SectionStyle.Render(f.Label) + "\n"
	case schema.FieldClaims:
		return m.viewClaimsField(fe, focused)
	case schema.FieldDrivers, schema.FieldVehicles:
		return fe.entity.view(focused)
	case schema.FieldCoverage:
		return fe.entity.viewCoverage(focused)
	case schema.FieldHousehold:
		return fe.entity.viewHousehold(focused)
	case schema.FieldCheckbox:
		mark := "[ ]"
		if m.ctrl.Store().GetBool(f.Name) {
			mark = "[x]"
		}
		return style.Render(mark) + " " + ValueStyle.Render(f.Label) + "\n"
	case schema.FieldSelect, schema.FieldRadio:
		v := m.ctrl.Store().Get(f.Name)
		if v == "" {
			v = schema.PlaceholderOption
		}
		return style.Render(label+":") + " " + optionView(v, focused) + "\n"
	case schema.FieldPctOfBase:
		v := m.ctrl.Store().Get(f.Name)
		if v == "" {
			v = schema.PlaceholderOption
		}
		amount := ""
		if v != schema.PlaceholderOption {
			amount = "  " + SubtitleStyle.Render(summary.ComputedAmount(m.ctrl.Store().Get(f.BaseField), v))
		}
		return style.Render(label+":") + " " + optionView(v, focused) + amount + "\n"
	default:
		return style.Render(label+":") + " " + fe.input.View() + "\n"
	}
}

// viewClaimsField hides the claims editor entirely while the gate field is
// not affirmative.
func (m *Model) viewClaimsField(fe *fieldEditor, focused bool) string {
	if m.ctrl.Store().Get(entities.ClaimsGateField) != entities.ClaimsGateYes {
		return ""
	}
	return fe.entity.view(focused)
}

func optionView(v string, focused bool) string {
	if focused {
		return ValueStyle.Render("◀ "+v+" ▶")
	}
	return ValueStyle.Render(v)
}

func (m *Model) viewSummary() string {
	qt := m.ctrl.QuoteType()
	st := m.ctrl.Store()
	pricing := summary.Premium(qt, st)
	start, end := summary.Term(qt, st, time.Now())

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Quote Summary") + "\n")
	b.WriteString(SubtitleStyle.Render(qt.Name) + "\n\n")

	quote := fmt.Sprintf("Annual Premium: %s\nMonthly Premium: %s\nTerm: %s to %s",
		PremiumStyle.Render(pricing.AnnualDisplay()),
		ValueStyle.Render(pricing.MonthlyDisplay()),
		start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	b.WriteString(CardFocusedStyle.Render(quote) + "\n\n")

	var recap strings.Builder
	recap.WriteString(renderBlock(summary.PolicyHolder(st), 0))
	for _, block := range summary.Recap(qt, st) {
		if m.cfg.Display.CompactSummary {
			block.Blocks = compactBlocks(block.Blocks)
		}
		recap.WriteString(renderBlock(block, 0))
	}
	b.WriteString(CardStyle.Render(strings.TrimRight(recap.String(), "\n")) + "\n")

	b.WriteString("\n")
	actions := []string{"Edit Quote", "Start Over", "Finish"}
	for i, a := range actions {
		if i == m.summaryIdx {
			b.WriteString(SelectedStyle.Render("[ "+a+" ]") + "  ")
		} else {
			b.WriteString(UnselectedStyle.Render("  "+a+"  ") + "  ")
		}
	}
	b.WriteString("\n\n" + m.helpLine([][2]string{
		{"left/right", "choose"}, {"enter", "confirm"}, {"esc", "back"},
	}))
	return b.String()
}

// compactBlocks trims each entity block to its first detail line, so long
// recaps fit on one screen.
func compactBlocks(blocks []summary.Block) []summary.Block {
	out := make([]summary.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, summary.Block{Title: b.Title, Items: b.Items[:min(len(b.Items), 1)]})
	}
	return out
}

func renderBlock(block summary.Block, depth int) string {
	if len(block.Items) == 0 && len(block.Blocks) == 0 {
		return ""
	}
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	b.WriteString(indent + SectionStyle.Render(block.Title) + "\n")
	for _, item := range block.Items {
		b.WriteString(indent + "  " + LabelStyle.Render(item.Label+":") + " " + ValueStyle.Render(item.Value) + "\n")
	}
	for _, nested := range block.Blocks {
		b.WriteString(renderBlock(nested, depth+1))
	}
	return b.String()
}

func (m *Model) helpLine(entries [][2]string) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, HelpKeyStyle.Render(e[0])+" "+HelpDescStyle.Render(e[1]))
	}
	return FooterStyle.Render(strings.Join(parts, "  "))
}
