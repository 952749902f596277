package discovery

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/PiDelport/django-develop/internal/l10n"
	"github.com/PiDelport/django-develop/internal/modules"
)

// Candidate is a candidate module with the problems found when checking it.
type Candidate struct {
	Name     string
	Problems Problems
}

// RootReport holds the candidates shown for one search root.
type RootReport struct {
	Root       string
	Candidates []Candidate
}

// Report discovers candidates under roots and checks each of them. Unless
// includeProblems is set, only candidates without problems are kept, and roots
// left with no candidates are dropped.
func Report(r modules.Resolver, roots []string, includeProblems bool, onError func(name string, err error)) []RootReport {
	var reports []RootReport
	for _, found := range Discover(r, roots, onError) {
		report := RootReport{Root: found.Root}
		for _, name := range found.Names {
			problems := FindPotentialProblems(r, name)
			if len(problems) > 0 && !includeProblems {
				continue
			}
			report.Candidates = append(report.Candidates, Candidate{Name: name, Problems: problems})
		}
		if len(report.Candidates) > 0 {
			reports = append(reports, report)
		}
	}
	return reports
}

// Write prints reports in the layout used by the command line tools. With
// includeProblems, every candidate is followed by its problems or by
// "(no problems)".
func Write(w io.Writer, reports []RootReport, includeProblems bool) {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	fmt.Fprintln(w, l10n.T("Possible settings modules found:"))
	fmt.Fprintln(w)
	for _, report := range reports {
		fmt.Fprintf(w, "    %s\n", heading.Render(l10n.T("From %s:", report.Root)))
		fmt.Fprintln(w)
		for _, c := range report.Candidates {
			switch {
			case !includeProblems:
				fmt.Fprintf(w, "        %s\n", c.Name)
			case len(c.Problems) == 0:
				fmt.Fprintf(w, "        %s (%s)\n", c.Name, l10n.T("no problems"))
			default:
				fmt.Fprintf(w, "        %s (%s)\n", c.Name, l10n.T("problems: %s", strings.Join(c.Problems, ", ")))
			}
		}
		fmt.Fprintln(w)
	}
}

// PrintCandidateSettings reports the candidate settings modules under roots
// to w. A spinner runs on stderr while scanning if stderr is a terminal.
func PrintCandidateSettings(w io.Writer, r modules.Resolver, roots []string, includeProblems bool) {
	s := startSpinner(l10n.T("Scanning for settings modules"))
	reports := Report(r, roots, includeProblems, DefaultWalkError)
	if s != nil {
		s.Stop()
	}
	Write(w, reports, includeProblems)
}

func startSpinner(suffix string) *spinner.Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	return s
}
