package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/goccy/go-json"
	"github.com/mindcheck/screener/internal/answerfile"
	"github.com/mindcheck/screener/internal/config"
	"github.com/mindcheck/screener/internal/db"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/service"
	"github.com/mindcheck/screener/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// scriptedPrompter answers every page with fixed values and can stop
// partway through, like a respondent pressing ctrl+c.
type scriptedPrompter struct {
	name       string
	ordinal    string
	yesNo      string
	abortAfter int
	confirm    bool

	pages    []PageRequest
	confirms int
}

func (p *scriptedPrompter) RespondentName() (string, error) { return p.name, nil }

func (p *scriptedPrompter) Page(req PageRequest) error {
	if p.abortAfter > 0 && len(p.pages) >= p.abortAfter {
		return errAborted
	}
	for i := range req.Values {
		if req.Meta.Instrument == domain.InstrumentImpairment {
			req.Values[i] = p.yesNo
		} else {
			req.Values[i] = p.ordinal
		}
	}
	p.pages = append(p.pages, req)
	return nil
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	p.confirms++
	return p.confirm, nil
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScreeningRepo(database)

	return &App{
		Screenings: service.NewScreeningService(repo, testutil.NewTestUoW(database)),
		Config: &config.Config{
			Store:  config.StoreConfig{Path: db.MemoryPath},
			Log:    config.LogConfig{Level: "warn", Format: "console"},
			Report: config.ReportConfig{Dir: t.TempDir(), DefaultFormat: "text"},
		},
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func writeTestAnswerFile(t *testing.T, name string, set domain.AnswerSet, format answerfile.Format) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers."+string(format))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, answerfile.FromAnswerSet(name, set).Encode(f, format))
	require.NoError(t, f.Close())
	return path
}

func importScreening(t *testing.T, app *App, name string, set domain.AnswerSet) *domain.Screening {
	t.Helper()
	outcome, err := app.Screenings.Import(context.Background(), name, set)
	require.NoError(t, err)
	return outcome.Screening
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "screener")
	assert.Contains(t, out, "history")
}

func TestRootCmd_SetupReceivesConfigFlag(t *testing.T) {
	app := testApp(t)
	var got string
	app.Setup = func(path string) error {
		got = path
		return nil
	}
	_, err := executeCmd(t, app, "--config", "/tmp/custom.yaml", "clinics")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", got)
}

// --- screen ---

func TestScreenCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "screen", "--name", "Alex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestScreenCmd_FullRun(t *testing.T) {
	app := testApp(t)
	prompt := &scriptedPrompter{name: "Jordan", ordinal: "4", yesNo: "yes"}
	app.Prompt = prompt

	out, err := executeCmd(t, app, "screen")
	require.NoError(t, err)
	assert.Contains(t, out, "Jordan")
	assert.Contains(t, out, "VERY HIGH")
	assert.Contains(t, out, "screener export")

	// 18 ASRS items in 3 pages, 3 impairment items in 1, 25 WURS items in 5.
	assert.Len(t, prompt.pages, 9)
	assert.Equal(t, domain.InstrumentASRS, prompt.pages[0].Meta.Instrument)
	assert.Equal(t, domain.InstrumentImpairment, prompt.pages[3].Meta.Instrument)
	assert.Equal(t, 5, prompt.pages[8].Pages)

	list, err := app.Screenings.List(context.Background(), repository.ScreeningFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.ScreeningCompleted, list[0].Status)
	assert.Equal(t, domain.SourceWizard, list[0].Source)
	assert.Len(t, list[0].Answers.WURS, 25)
}

func TestScreenCmd_AbortThenResume(t *testing.T) {
	app := testApp(t)
	app.Prompt = &scriptedPrompter{ordinal: "1", yesNo: "no", abortAfter: 2}

	_, err := executeCmd(t, app, "screen", "--name", "Sam")
	require.ErrorIs(t, err, errAborted)

	list, err := app.Screenings.List(context.Background(), repository.ScreeningFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	sc := list[0]
	assert.Equal(t, domain.ScreeningInProgress, sc.Status)
	assert.Len(t, sc.Answers.ASRS, 12, "two pages were saved before the abort")

	resumed := &scriptedPrompter{ordinal: "1", yesNo: "no"}
	app.Prompt = resumed
	out, err := executeCmd(t, app, "screen", "--resume", sc.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "LOW")

	require.Len(t, resumed.pages, 7)
	assert.Equal(t, 3, resumed.pages[0].Page)
	assert.Equal(t, domain.InstrumentASRS, resumed.pages[0].Meta.Instrument)
}

func TestScreenCmd_ResumeCompletedFails(t *testing.T) {
	app := testApp(t)
	app.Prompt = &scriptedPrompter{}
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(10, 10, 1, 10))

	_, err := executeCmd(t, app, "screen", "--resume", sc.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already completed")
}

func TestScreenCmd_ResumeUnknown(t *testing.T) {
	app := testApp(t)
	app.Prompt = &scriptedPrompter{}

	_, err := executeCmd(t, app, "screen", "--resume", "deadbeef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPaginate(t *testing.T) {
	assert.Len(t, paginate(nil, 6), 0)
	pages := paginate(make([]instrument.Item, 13), 6)
	require.Len(t, pages, 3)
	assert.Len(t, pages[2], 1)
}

// --- score ---

func TestScoreCmd_Pretty(t *testing.T) {
	app := testApp(t)
	path := writeTestAnswerFile(t, "Alex", testutil.AnswerSet(16, 10, 0, 20), answerfile.FormatYAML)

	out, err := executeCmd(t, app, "score", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MODERATE")
	assert.Contains(t, out, "26/72")

	list, err := app.Screenings.List(context.Background(), repository.ScreeningFilter{})
	require.NoError(t, err)
	assert.Empty(t, list, "score does not store without --save")
}

func TestScoreCmd_JSONFormat(t *testing.T) {
	app := testApp(t)
	path := writeTestAnswerFile(t, "Alex", testutil.AnswerSet(18, 0, 2, 50), answerfile.FormatJSON)

	out, err := executeCmd(t, app, "score", path, "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	verdict := doc["verdict"].(map[string]any)
	assert.Equal(t, "very_high", verdict["tier"])
}

func TestScoreCmd_StrictRejectsPartialFile(t *testing.T) {
	app := testApp(t)
	partial := domain.AnswerSet{ASRS: domain.OrdinalAnswers{1: 4}}
	path := writeTestAnswerFile(t, "Alex", partial, answerfile.FormatYAML)

	_, err := executeCmd(t, app, "score", path)
	require.NoError(t, err, "lenient scoring accepts partial files")

	_, err = executeCmd(t, app, "score", path, "--strict")
	assert.ErrorIs(t, err, answerfile.ErrInvalidFile)
}

func TestScoreCmd_SaveStoresFileSource(t *testing.T) {
	app := testApp(t)
	path := writeTestAnswerFile(t, "Riley", testutil.AnswerSet(14, 0, 2, 0), answerfile.FormatYAML)

	out, err := executeCmd(t, app, "score", path, "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved as")

	list, err := app.Screenings.List(context.Background(), repository.ScreeningFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Riley", list[0].RespondentName)
	assert.Equal(t, domain.SourceFile, list[0].Source)
}

func TestScoreCmd_BinaryNeedsOut(t *testing.T) {
	app := testApp(t)
	path := writeTestAnswerFile(t, "Alex", testutil.AnswerSet(1, 1, 1, 1), answerfile.FormatYAML)

	_, err := executeCmd(t, app, "score", path, "--format", "xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out")
}

func TestScoreCmd_InvalidFormatFlag(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "score", "x.yaml", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want one of")
}

func TestScoreCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "score", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

// --- result ---

func TestResultShow(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(24, 48, 3, 80))

	out, err := executeCmd(t, app, "result", "show", sc.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "VERY HIGH")
	assert.NotContains(t, out, "BY CATEGORY")

	out, err = executeCmd(t, app, "result", "show", sc.ID, "--categories")
	require.NoError(t, err)
	assert.Contains(t, out, "CURRENT SYMPTOMS BY CATEGORY")
}

func TestResultShow_InProgressShowsProgress(t *testing.T) {
	app := testApp(t)
	sc, err := app.Screenings.Start(context.Background(), "Sam")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "result", "show", sc.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "IN PROGRESS")
	assert.Contains(t, out, "0/18")
	assert.Contains(t, out, "screen --resume")
}

func TestResultShow_NotFound(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "result", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResultView_UsesPager(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(20, 10, 2, 40))

	var title, content string
	app.Pager = func(gotTitle, gotContent string) error {
		title, content = gotTitle, gotContent
		return nil
	}

	_, err := executeCmd(t, app, "result", "view", sc.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, title, "Alex")
	assert.Contains(t, stripANSI(content), "CHILDHOOD SYMPTOMS BY CATEGORY")
}

func TestResultView_NonInteractivePrints(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(20, 10, 2, 40))

	out, err := executeCmd(t, app, "result", "view", sc.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "NEXT STEPS")
}

func TestResultView_InProgressFails(t *testing.T) {
	app := testApp(t)
	sc, err := app.Screenings.Start(context.Background(), "Sam")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "result", "view", sc.ID)
	assert.ErrorIs(t, err, service.ErrIncomplete)
}

// --- history ---

func TestHistoryList(t *testing.T) {
	app := testApp(t)
	done := importScreening(t, app, "Alex", testutil.AnswerSet(24, 0, 3, 60))
	_, err := app.Screenings.Start(context.Background(), "Sam")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, done.DisplayID())
	assert.Contains(t, out, "VERY HIGH")
	assert.Contains(t, out, "2 screening(s), 1 completed")

	out, err = executeCmd(t, app, "history", "list", "--status", "in-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Sam")
	assert.NotContains(t, out, "Alex")

	out, err = executeCmd(t, app, "history", "ls", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 screening(s)")
}

func TestHistoryList_Empty(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No screenings yet")
}

func TestHistoryList_BadStatus(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "history", "list", "--status", "paused")
	assert.Error(t, err)
}

func TestHistoryRemove(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(1, 1, 1, 1))

	out, err := executeCmd(t, app, "history", "remove", sc.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	_, err = executeCmd(t, app, "history", "rm", sc.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHistoryReset(t *testing.T) {
	app := testApp(t)
	importScreening(t, app, "Alex", testutil.AnswerSet(1, 1, 1, 1))
	importScreening(t, app, "Sam", testutil.AnswerSet(1, 1, 1, 1))

	_, err := executeCmd(t, app, "history", "reset")
	require.Error(t, err, "non-interactive reset needs --yes")

	prompt := &scriptedPrompter{confirm: false}
	app.Prompt = prompt
	out, err := executeCmd(t, app, "history", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing deleted")
	assert.Equal(t, 1, prompt.confirms)

	out, err = executeCmd(t, app, "history", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 screening(s)")
}

// --- export ---

func TestExport_DefaultPathAndFormat(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(16, 10, 2, 40))

	out, err := executeCmd(t, app, "export", sc.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote text report")

	matches, err := filepath.Glob(filepath.Join(app.Config.Report.Dir, "adhd-screening-*.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "ADHD Self-Screening Result")
}

func TestExport_XLSX(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(16, 10, 2, 40))
	path := filepath.Join(t.TempDir(), "report.xlsx")

	_, err := executeCmd(t, app, "export", sc.ID, "--format", "xlsx", "--out", path)
	require.NoError(t, err)

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	assert.Contains(t, f.Sheet, "Summary")
}

func TestExport_YAMLToStdout(t *testing.T) {
	app := testApp(t)
	sc := importScreening(t, app, "Alex", testutil.AnswerSet(16, 10, 2, 40))

	out, err := executeCmd(t, app, "export", sc.ID, "--format", "yaml", "--out", "-")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Alex", doc["respondent"])
}

func TestExport_AnswersRoundTrip(t *testing.T) {
	app := testApp(t)
	set := testutil.AnswerSet(16, 10, 2, 40)
	sc := importScreening(t, app, "Alex", set)
	path := filepath.Join(t.TempDir(), "answers.json")

	_, err := executeCmd(t, app, "export", sc.ID, "--answers", "--out", path)
	require.NoError(t, err)

	f, err := answerfile.Load(path)
	require.NoError(t, err)
	require.NoError(t, answerfile.ValidateStrict(f))
	assert.Equal(t, set, f.AnswerSet())
}

func TestExport_InProgressFails(t *testing.T) {
	app := testApp(t)
	sc, err := app.Screenings.Start(context.Background(), "Sam")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "export", sc.ID)
	require.ErrorIs(t, err, service.ErrIncomplete)
}

// --- clinics ---

func TestClinics(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "clinics", "--region", "busan")
	require.NoError(t, err)
	assert.Contains(t, out, "CLINICS IN BUSAN")
	assert.Contains(t, out, "Pusan National University Hospital")
	assert.Contains(t, out, "map.naver.com")
	assert.Contains(t, out, "map.kakao.com")
	assert.Contains(t, out, "google.com/maps")
}

func TestClinics_ConfigDefaultRegionAndProvider(t *testing.T) {
	app := testApp(t)
	app.Config.Clinic.DefaultRegion = "Daegu"

	out, err := executeCmd(t, app, "clinics", "--search-provider", "kakao")
	require.NoError(t, err)
	assert.Contains(t, out, "CLINICS IN DAEGU")
	assert.Contains(t, out, "map.kakao.com/?q=Daegu")
	assert.NotContains(t, out, "map.naver.com")
}

func TestClinics_InvalidFlags(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "clinics", "--region", "Atlantis")
	assert.Error(t, err)

	_, err = executeCmd(t, testApp(t), "clinics", "--search-provider", "bing")
	assert.Error(t, err)
}
