package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/tables"
	"github.com/okian/proctor/internal/domain/types"
)

const labelWidth = 22

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Width(labelWidth)
	valueStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// render writes v in the selected format. text builds the styled form.
func (a *app) render(v any, text func() string) error {
	switch a.format {
	case FormatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		return a.renderYAML(v)
	default:
		_, err := fmt.Fprintln(a.out, text())
		return err
	}
}

// renderYAML goes through JSON so that YAML keys and field order match the
// HTTP API.
func (a *app) renderYAML(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	blockStyle(&node)
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles JSON input parses into.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func row(label, value, extra string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "  " + extra
}

func verdict(ok bool, text string) string {
	if ok {
		return passStyle.Render(text)
	}
	return failStyle.Render(text)
}

func rawValue(es scoring.EventScore) string {
	if es.Event == tables.Plank || es.Event.Direction() == tables.Time {
		return model.FormatClock(es.Raw)
	}
	return fmt.Sprint(es.Raw)
}

func eventRow(es scoring.EventScore) string {
	return row(es.Label, rawValue(es), fmt.Sprintf("%3d pts", es.Points))
}

func header(test string, g tables.Gender, b tables.AgeBracket, altitude bool) string {
	h := titleStyle.Render(test) + "  " + dimStyle.Render(fmt.Sprintf("%s %s", g, b))
	if altitude {
		h += dimStyle.Render("  altitude")
	}
	return h
}

func classLine(total int, c scoring.Classification, grade string, ok bool) string {
	return row("Total", fmt.Sprint(total), verdict(ok, fmt.Sprintf("%s (%s)", c, grade)))
}

func failedLine(failed []tables.Event) string {
	if len(failed) == 0 {
		return ""
	}
	labels := make([]string, len(failed))
	for i, ev := range failed {
		labels[i] = ev.Label()
	}
	return "\n" + failStyle.Render("Below minimum: "+strings.Join(labels, ", "))
}

func pftText(r scoring.Result) string {
	body := strings.Join([]string{
		header("PFT", r.Gender, r.AgeBracket, r.Altitude),
		eventRow(r.UpperBody),
		eventRow(r.Core),
		eventRow(r.Cardio),
		classLine(r.TotalPoints, r.Classification, r.Grade, r.Classification != scoring.Fail),
	}, "\n")
	return cardStyle.Render(body + failedLine(r.FailedEvents))
}

func cftText(r scoring.CombatResult) string {
	body := strings.Join([]string{
		header("CFT", r.Gender, r.AgeBracket, r.Altitude),
		eventRow(r.MTC),
		eventRow(r.AmmoLift),
		eventRow(r.Maneuver),
		classLine(r.TotalPoints, r.Classification, r.Grade, r.Passed),
	}, "\n")
	return cardStyle.Render(body + failedLine(r.FailedEvents))
}

func bodyText(as bodycomp.Assessment) string {
	w := as.Weight
	lines := []string{
		titleStyle.Render("Body Composition") + "  " + dimStyle.Render(string(w.Bracket)),
		row("Height", fmt.Sprintf("%d in", w.Height), ""),
		row("Weight", fmt.Sprintf("%.1f", w.ActualWeight), fmt.Sprintf("max %d lbs", w.MaxWeight)),
	}
	if bf := as.BodyFat; bf != nil {
		lines = append(lines,
			row("Neck", fmt.Sprintf("%.1f", bf.Measurements.Neck), ""),
			row("Abdomen", fmt.Sprintf("%.1f", bf.Measurements.Abdomen), ""),
		)
		if bf.Measurements.Hips > 0 {
			lines = append(lines, row("Hips", fmt.Sprintf("%.1f", bf.Measurements.Hips), ""))
		}
		lines = append(lines, row("Body fat", fmt.Sprintf("%d%%", bf.BodyFatPercent), fmt.Sprintf("max %d%%", bf.MaxAllowed)))
	}
	lines = append(lines, verdict(as.Passed, as.Message))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func bracketsText(b types.Brackets) string {
	return strings.Join([]string{
		row("Age", fmt.Sprint(b.Age), ""),
		row("Fitness bracket", b.Fitness, ""),
		row("Weight bracket", b.Weight, ""),
	}, "\n")
}

func instructionsText(ins []bodycomp.Instruction) string {
	lines := make([]string, 0, len(ins))
	for i, in := range ins {
		lines = append(lines, titleStyle.Render(fmt.Sprintf("%d. %s", i+1, in.Site))+"\n   "+in.Text)
	}
	return strings.Join(lines, "\n")
}

func leaderboardText(board types.Board, entries []types.Entry) string {
	lines := []string{titleStyle.Render(strings.ToUpper(string(board)) + " leaderboard")}
	if len(entries) == 0 {
		lines = append(lines, dimStyle.Render("no scored Marines"))
	}
	for _, e := range entries {
		name := lipgloss.NewStyle().Width(32).Render(e.Name)
		lines = append(lines, fmt.Sprintf("%4d  %s %4d  %s", e.Rank, name, e.Total,
			verdict(e.Classification != string(scoring.Fail), e.Classification)))
	}
	return strings.Join(lines, "\n")
}
