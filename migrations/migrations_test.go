package migrations

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mig(rev, down string) *Migration {
	return &Migration{Name: rev + ".sql", Revision: rev, DownRevision: down, Up: "SELECT 1", Down: "SELECT 1"}
}

func revisions(ms []*Migration) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Revision)
	}
	return out
}

func TestParse(t *testing.T) {
	content := []byte(`-- revision: 0003_add_news_index
-- down_revision: 0002_weekly_uniqueness
-- branch_labels: news, search
-- depends_on: 0001_initial_schema
-- adds an index

-- +migrate Up
CREATE INDEX ix_news ON player_news (nfl_player_id);

-- +migrate Down
DROP INDEX ix_news;
`)

	m, err := Parse("0003.sql", content)
	require.NoError(t, err)

	assert.Equal(t, "0003_add_news_index", m.Revision)
	assert.Equal(t, "0002_weekly_uniqueness", m.DownRevision)
	assert.Equal(t, []string{"news", "search"}, m.BranchLabels)
	assert.Equal(t, []string{"0001_initial_schema"}, m.DependsOn)
	assert.Equal(t, "CREATE INDEX ix_news ON player_news (nfl_player_id);", m.Up)
	assert.Equal(t, "DROP INDEX ix_news;", m.Down)
}

func TestParse_baseRevisionAndNoDown(t *testing.T) {
	m, err := Parse("a.sql", []byte("-- revision: a\n-- down_revision: none\n-- +migrate Up\nSELECT 1;"))
	require.NoError(t, err)
	assert.Empty(t, m.DownRevision)
	assert.Nil(t, m.BranchLabels)
	assert.Empty(t, m.Down)
}

func TestParse_errors(t *testing.T) {
	tests := map[string]string{
		"missing up marker": "-- revision: a\nSELECT 1;",
		"missing revision":  "-- down_revision: none\n-- +migrate Up\nSELECT 1;",
		"empty up section":  "-- revision: a\n-- +migrate Up\n\n-- +migrate Down\nSELECT 1;",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("x.sql", []byte(content))
			assert.Error(t, err)
		})
	}
}

func TestNewChain_ordersByDownRevision(t *testing.T) {
	chain, err := NewChain([]*Migration{mig("c", "b"), mig("a", ""), mig("b", "a")})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, revisions(chain.Migrations()))
	assert.Equal(t, "c", chain.Head())
}

func TestNewChain_errors(t *testing.T) {
	tests := map[string]struct {
		migrations []*Migration
		want       error
	}{
		"empty":          {migrations: nil, want: ErrNoMigrations},
		"duplicate":      {migrations: []*Migration{mig("a", ""), mig("a", "")}, want: ErrDuplicateRevision},
		"unknown parent": {migrations: []*Migration{mig("a", ""), mig("b", "zzz")}, want: ErrUnknownRevision},
		"two heads":      {migrations: []*Migration{mig("a", ""), mig("b", "a"), mig("c", "a")}, want: ErrMultipleHeads},
		"two bases":      {migrations: []*Migration{mig("a", ""), mig("b", "")}, want: ErrMultipleBases},
		"cycle":          {migrations: []*Migration{mig("a", "b"), mig("b", "a")}, want: ErrBrokenChain},
		"orphan cycle":   {migrations: []*Migration{mig("a", ""), mig("b", "c"), mig("c", "b")}, want: ErrBrokenChain},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewChain(tc.migrations)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewChain_dependsOnMustPrecede(t *testing.T) {
	a, b := mig("a", ""), mig("b", "a")
	a.DependsOn = []string{"b"}
	_, err := NewChain([]*Migration{a, b})
	assert.ErrorIs(t, err, ErrBrokenChain)

	b.DependsOn = []string{"nope"}
	a.DependsOn = nil
	_, err = NewChain([]*Migration{a, b})
	assert.ErrorIs(t, err, ErrUnknownRevision)
}

func TestChain_UpgradePlan(t *testing.T) {
	b := mig("b", "a")
	b.BranchLabels = []string{"stats"}
	chain, err := NewChain([]*Migration{mig("a", ""), b, mig("c", "b")})
	require.NoError(t, err)

	tests := map[string]struct {
		current string
		target  string
		want    []string
	}{
		"base to head":   {current: "", target: Head, want: []string{"a", "b", "c"}},
		"middle to head": {current: "a", target: Head, want: []string{"b", "c"}},
		"at head":        {current: "c", target: Head, want: []string{}},
		"to revision":    {current: "", target: "b", want: []string{"a", "b"}},
		"to label":       {current: "", target: "stats", want: []string{"a", "b"}},
		"relative":       {current: "a", target: "+1", want: []string{"b"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			plan, err := chain.UpgradePlan(tc.current, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, revisions(plan))
		})
	}
}

func TestChain_DowngradePlan(t *testing.T) {
	chain, err := NewChain([]*Migration{mig("a", ""), mig("b", "a"), mig("c", "b")})
	require.NoError(t, err)

	tests := map[string]struct {
		current string
		target  string
		want    []string
	}{
		"head to base":  {current: "c", target: Base, want: []string{"c", "b", "a"}},
		"one step":      {current: "c", target: "-1", want: []string{"c"}},
		"to revision":   {current: "c", target: "a", want: []string{"c", "b"}},
		"already there": {current: "", target: Base, want: []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			plan, err := chain.DowngradePlan(tc.current, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, revisions(plan))
		})
	}
}

func TestChain_planErrors(t *testing.T) {
	chain, err := NewChain([]*Migration{mig("a", ""), mig("b", "a")})
	require.NoError(t, err)

	_, err = chain.UpgradePlan("b", "a")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = chain.DowngradePlan("a", Head)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = chain.DowngradePlan("a", "-5")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = chain.UpgradePlan("", "+x")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = chain.UpgradePlan("", "missing")
	assert.ErrorIs(t, err, ErrUnknownRevision)

	_, err = chain.UpgradePlan("gone", Head)
	assert.ErrorIs(t, err, ErrUnknownRevision)
}

func TestLoad_skipsNonSQLFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"001.sql":       {Data: []byte("-- revision: one\n-- down_revision: none\n-- +migrate Up\nSELECT 1;")},
		"002.sql":       {Data: []byte("-- revision: two\n-- down_revision: one\n-- +migrate Up\nSELECT 2;")},
		"README.md":     {Data: []byte("not a migration")},
		"template.tmpl": {Data: []byte("-- revision: {{ .Revision }}")},
	}

	chain, err := Load(fsys, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, revisions(chain.Migrations()))
}

func TestLoad_embedded(t *testing.T) {
	chain, err := Load(FS, ".")
	require.NoError(t, err)

	assert.Equal(t, []string{"0001_initial_schema", "0002_weekly_uniqueness"}, revisions(chain.Migrations()))
	for _, m := range chain.Migrations() {
		assert.NotEmpty(t, m.Up, m.Revision)
		assert.NotEmpty(t, m.Down, m.Revision)
	}
}

func TestRenderNew(t *testing.T) {
	content, err := RenderNew("0003_add_thing", "0002_weekly_uniqueness", "add thing")
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "-- revision: 0003_add_thing")
	assert.Contains(t, text, "-- down_revision: 0002_weekly_uniqueness")
	assert.Contains(t, text, "-- message: add thing")

	// An unfilled template has no Up SQL and is rejected.
	_, err = Parse("0003.sql", content)
	assert.Error(t, err)

	filled := strings.Replace(text, upMarker, upMarker+"\nSELECT 1;", 1)
	m, err := Parse("0003.sql", []byte(filled))
	require.NoError(t, err)
	assert.Equal(t, "0002_weekly_uniqueness", m.DownRevision)
	assert.Equal(t, "SELECT 1;", m.Up)
}

func TestRenderNew_messageCannotOverrideHeaders(t *testing.T) {
	content, err := RenderNew("0003_x", "0002_weekly_uniqueness", "revision: oops\ndown_revision: none")
	require.NoError(t, err)

	filled := strings.Replace(string(content), upMarker, upMarker+"\nSELECT 1;", 1)
	m, err := Parse("0003.sql", []byte(filled))
	require.NoError(t, err)
	assert.Equal(t, "0003_x", m.Revision)
	assert.Equal(t, "0002_weekly_uniqueness", m.DownRevision)
}

func TestRenderNew_base(t *testing.T) {
	content, err := RenderNew("0001_first", "", "first")
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- down_revision: none")
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Add player index":        "add_player_index",
		"  drop -- old  columns!": "drop_old_columns",
		"v2 stats":                "v2_stats",
		"???":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}
