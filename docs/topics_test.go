package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file of
	// the package is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned an unexpected error: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if slices.Contains(all, readme) {
		t.Errorf("GetAllTopics() = %q, should not list the readme", all)
	}
}

func TestGetTopics(t *testing.T) {
	everything, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(\"*\") returned an unexpected error: %v", err)
	}
	for _, title := range []string{"# Accounts", "# Storage", "# Transactions"} {
		if !strings.Contains(everything, title) {
			t.Errorf("GetTopic(\"*\") does not contain %q", title)
		}
	}

	if _, err := GetTopics("accounts", "no-such-topic"); err == nil {
		t.Error("GetTopics() with an unknown topic should fail")
	}
}

// TestCodeBlocks plays the scenarios written in the code blocks of every topic
// and of the README against the konto binary.
//
// A "bash setup" block starts a new scenario in a fresh folder, "bash run"
// blocks record their output for the next "console check" block, and "bash
// check" blocks must succeed.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	env := scenarioEnv(buildKonto(t))
	for _, file := range files {
		for _, sc := range readScenarios(t, file) {
			t.Run(sc[0].pos, func(t *testing.T) {
				playScenario(t, env, sc)
			})
		}
	}
}

// Fenced code blocks languages of scenario steps.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	bashCheck    = "bash check"
	consoleCheck = "console check"
)

// step is a code block of a scenario.
type step struct {
	lang   string
	script string
	pos    string // file:line of the block
}

// buildKonto compiles the konto executable and returns the folder holding it.
func buildKonto(t *testing.T) string {
	t.Helper()
	bin := t.TempDir()
	out, err := exec.Command("go", "build", "-o", filepath.Join(bin, "konto"), "../konto/").CombinedOutput()
	if err != nil {
		t.Fatalf("cannot build konto: %v\n%s", err, out)
	}
	return bin
}

// scenarioEnv is the environment of the scenarios: konto found first in the
// PATH and no KONTO_* variable, so the defaults apply.
func scenarioEnv(bin string) []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "KONTO_") || strings.HasPrefix(kv, "PATH=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// readScenarios splits the scenario steps of a markdown file, a new scenario
// begins at every "bash setup" block.
func readScenarios(t *testing.T, file string) [][]step {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	var scenarios [][]step
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		s := step{lang: string(fcb.Info.Segment.Value(source))}
		switch s.lang {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkSkipChildren, nil
		}
		line := 1 + bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n"))
		s.pos = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		var script strings.Builder
		for i := range fcb.Lines().Len() {
			seg := fcb.Lines().At(i)
			script.Write(seg.Value(source))
		}
		s.script = script.String()

		if s.lang == bashSetup || len(scenarios) == 0 {
			scenarios = append(scenarios, nil)
		}
		scenarios[len(scenarios)-1] = append(scenarios[len(scenarios)-1], s)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("cannot walk %s: %v", file, err)
	}
	return scenarios
}

// playScenario runs the steps of a scenario in order, in a fresh folder.
func playScenario(t *testing.T, env []string, steps []step) {
	folder := t.TempDir()
	var output string
	for _, s := range steps {
		if s.lang == consoleCheck {
			if got, want := strings.TrimSpace(output), strings.TrimSpace(s.script); got != want {
				t.Errorf("%s: unexpected output:\n%s\nwant:\n%s\n\ngot  %q\nwant %q", s.pos, got, want, got, want)
			}
			continue
		}

		cmd := exec.Command("bash", "-e", "-c", s.script)
		cmd.Dir, cmd.Env = folder, env
		out, err := cmd.CombinedOutput()
		if s.lang == bashRun {
			output = string(out)
		}
		switch {
		case err == nil:
		case s.lang == bashCheck:
			t.Errorf("%s: check failed: %v\n%s", s.pos, err, out)
		default:
			t.Fatalf("%s: %s failed: %v\n%s", s.pos, s.lang, err, out)
		}
	}
}
