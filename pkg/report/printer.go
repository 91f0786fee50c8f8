package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/demo"
	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	domainagent "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/version"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Printer renders command results for people (text) or programs (json).
type Printer struct {
	out    io.Writer
	format string
	// traces held back in json mode until Demo writes the document.
	traces []domainagent.GuardrailTrace
}

func NewPrinter(out io.Writer, format string) (*Printer, error) {
	switch format {
	case "", FormatText:
		format = FormatText
	case FormatJSON:
	default:
		return nil, fmt.Errorf("%w %q: must be text or json", ErrUnknownFormat, format)
	}
	return &Printer{out: out, format: format}, nil
}

func (p *Printer) JSON() bool {
	return p.format == FormatJSON
}

func (p *Printer) Identifier(title string, id domain.Identifier) error {
	if p.JSON() {
		return p.encode(id)
	}
	p.title(title)
	p.field("guardrail id", id.ID)
	p.field("arn", id.ARN)
	p.field("version", id.Version)
	if !id.CreatedAt.IsZero() {
		p.field("created at", id.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func (p *Printer) Summaries(summaries []domain.Summary) error {
	if p.JSON() {
		if summaries == nil {
			summaries = []domain.Summary{}
		}
		return p.encode(summaries)
	}
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(p.out, dimStyle.Render("no guardrails found"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "NAME", "VERSION", "STATUS", "UPDATED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range summaries {
		t.Row(s.ID, s.Name, s.Version, s.Status, formatTime(s.UpdatedAt))
	}
	_, err := fmt.Fprintln(p.out, t.String())
	return err
}

func (p *Printer) Summary(s domain.Summary) error {
	if p.JSON() {
		return p.encode(s)
	}
	p.title(s.Name)
	p.field("guardrail id", s.ID)
	p.field("arn", s.ARN)
	p.field("version", s.Version)
	p.field("status", s.Status)
	p.field("description", s.Description)
	p.field("blocked input", s.BlockedInputMessaging)
	p.field("blocked output", s.BlockedOutputsMessaging)
	p.field("policies", strings.Join(s.Policies, ", "))
	p.field("status reasons", strings.Join(s.StatusReasons, "; "))
	p.field("created at", formatTime(s.CreatedAt))
	p.field("updated at", formatTime(s.UpdatedAt))
	return nil
}

func (p *Printer) Evaluation(eval domain.Evaluation) error {
	if p.JSON() {
		return p.encode(eval)
	}
	p.evaluation(eval)
	return nil
}

func (p *Printer) Grounding(results []app.GroundingResult) error {
	if p.JSON() {
		return p.encode(results)
	}
	for _, r := range results {
		p.title(fmt.Sprintf("%s: %q", r.Case.Label, r.Case.Answer))
		eval := r.Evaluation
		p.field("action", verdict(eval))
		if eval.Grounding != nil {
			p.field("grounding", formatScore(*eval.Grounding))
		}
		if eval.Relevance != nil {
			p.field("relevance", formatScore(*eval.Relevance))
		}
	}
	return nil
}

// Trace prints one guardrail trace as it arrives during an agent invocation.
// In json mode traces are collected and written by Demo instead. Write errors
// are dropped so the stream keeps flowing.
func (p *Printer) Trace(trace domainagent.GuardrailTrace) {
	if p.JSON() {
		p.traces = append(p.traces, trace)
		return
	}
	style := passStyle
	if trace.Intervened() {
		style = blockStyle
	}
	_, _ = fmt.Fprintf(p.out, "\n%s overall action: %s\n", dimStyle.Render("[guardrail trace]"), style.Render(trace.Action))
	for _, a := range trace.Assessments {
		if len(a.Violations) == 0 {
			_, _ = fmt.Fprintf(p.out, "  %s: no findings\n", a.Side)
			continue
		}
		for _, v := range a.Violations {
			_, _ = fmt.Fprintf(p.out, "  %s: %s\n", a.Side, formatViolation(v))
		}
	}
}

type demoOutput struct {
	demo.Result
	Completion string                       `json:"completion,omitempty"`
	Traces     []domainagent.GuardrailTrace `json:"traces"`
	Cleaned    bool                         `json:"cleaned_up"`
}

func (p *Printer) Demo(result demo.Result, completion string, cleaned bool) error {
	if p.JSON() {
		traces := p.traces
		p.traces = nil
		if traces == nil {
			traces = []domainagent.GuardrailTrace{}
		}
		return p.encode(demoOutput{Result: result, Completion: completion, Traces: traces, Cleaned: cleaned})
	}
	_, _ = fmt.Fprintln(p.out)
	p.title("demo resources")
	res := result.Resources
	p.field("guardrail", res.GuardrailID+" ("+res.GuardrailVersion+")")
	p.field("role", res.RoleARN)
	p.field("agent", res.AgentID)
	p.field("alias", res.AliasID)
	p.field("agent version", res.AgentVersion)
	p.field("session", result.Invoke.SessionID)
	if cleaned {
		p.field("cleanup", "all resources deleted")
	} else {
		p.field("cleanup", "resources kept, rerun with --cleanup to remove them")
	}
	return nil
}

func (p *Printer) Deleted(guardrailID, version string) error {
	if p.JSON() {
		return p.encode(map[string]string{"deleted": guardrailID, "version": version})
	}
	target := guardrailID
	if version != "" {
		target += " version " + version
	}
	_, err := fmt.Fprintf(p.out, "%s %s\n", passStyle.Render("deleted"), target)
	return err
}

func (p *Printer) Version(info version.Info) error {
	if p.JSON() {
		return p.encode(info)
	}
	_, err := fmt.Fprintln(p.out, info.String())
	return err
}

func (p *Printer) evaluation(eval domain.Evaluation) {
	p.title("guardrail " + eval.GuardrailID + " (" + eval.Version + ")")
	p.field("source", eval.Source)
	p.field("action", verdict(eval))
	for _, v := range eval.Violations {
		p.field(v.Policy, formatViolation(v))
	}
	if eval.Grounding != nil {
		p.field("grounding", formatScore(*eval.Grounding))
	}
	if eval.Relevance != nil {
		p.field("relevance", formatScore(*eval.Relevance))
	}
	for _, out := range eval.Outputs {
		p.field("output", out)
	}
	p.field("latency", fmt.Sprintf("%dms", eval.LatencyMs))
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) title(s string) {
	_, _ = fmt.Fprintln(p.out, titleStyle.Render(s))
}

func (p *Printer) field(key, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s %s\n", keyStyle.Render(key), value)
}

func verdict(eval domain.Evaluation) string {
	label := "PASSED"
	switch {
	case eval.Blocked():
		label = "BLOCKED"
	case eval.Intervened():
		label = "MASKED"
	}
	return verdictStyle(eval.Intervened(), eval.Blocked()).Render(label)
}

func formatViolation(v domain.Violation) string {
	s := v.Name + " " + v.Action
	if v.Detail != "" {
		s += " " + dimStyle.Render("("+v.Detail+")")
	}
	return s
}

func formatScore(s domain.Score) string {
	return fmt.Sprintf("%.2f (threshold %.2f) %s", s.Score, s.Threshold, s.Action)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
