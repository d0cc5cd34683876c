package migrations

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"

	// Head and Base are the symbolic upgrade/downgrade targets.
	Head = "head"
	Base = "base"
)

var (
	ErrNoMigrations      = errors.New("no migrations found")
	ErrDuplicateRevision = errors.New("duplicate revision")
	ErrUnknownRevision   = errors.New("unknown revision")
	ErrMultipleHeads     = errors.New("multiple head revisions")
	ErrMultipleBases     = errors.New("multiple base revisions")
	ErrBrokenChain       = errors.New("revision chain is broken")
	ErrInvalidTarget     = errors.New("invalid migration target")
)

// Migration is one revision with its forward and reverse SQL.
type Migration struct {
	Name         string
	Revision     string
	DownRevision string
	BranchLabels []string
	DependsOn    []string
	Up           string
	Down         string
}

// Chain is the ordered list of migrations from base to head.
type Chain struct {
	ordered []*Migration
	index   map[string]int
	labels  map[string]string
}

// Parse reads one migration file.
func Parse(name string, content []byte) (*Migration, error) {
	m := &Migration{Name: name}

	var header strings.Builder
	text := string(content)
	upIdx := strings.Index(text, upMarker)
	if upIdx == -1 {
		return nil, fmt.Errorf("%s: missing %q section", name, upMarker)
	}
	header.WriteString(text[:upIdx])

	body := text[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		m.Up = strings.TrimSpace(body[:downIdx])
		m.Down = strings.TrimSpace(body[downIdx+len(downMarker):])
	} else {
		m.Up = strings.TrimSpace(body)
	}

	scanner := bufio.NewScanner(strings.NewReader(header.String()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "--") {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "--")), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "revision":
			m.Revision = value
		case "down_revision":
			if !isNone(value) {
				m.DownRevision = value
			}
		case "branch_labels":
			m.BranchLabels = splitList(value)
		case "depends_on":
			m.DependsOn = splitList(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}

	if m.Revision == "" {
		return nil, fmt.Errorf("%s: missing revision header", name)
	}
	if m.Up == "" {
		return nil, fmt.Errorf("%s: empty %q section", name, upMarker)
	}
	return m, nil
}

// Load parses every *.sql file under root and links them into a chain.
func Load(fsys fs.FS, root string) (*Chain, error) {
	if root == "" {
		root = "."
	}
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var migrations []*Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		m, err := Parse(entry.Name(), content)
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, m)
	}

	return NewChain(migrations)
}

// NewChain links migrations by their down_revision pointers. The result must be
// a single line from one base to one head.
func NewChain(migrations []*Migration) (*Chain, error) {
	if len(migrations) == 0 {
		return nil, ErrNoMigrations
	}

	byRev := make(map[string]*Migration, len(migrations))
	children := make(map[string][]string)
	var bases []string
	for _, m := range migrations {
		if _, dup := byRev[m.Revision]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRevision, m.Revision)
		}
		byRev[m.Revision] = m
		if m.DownRevision == "" {
			bases = append(bases, m.Revision)
		} else {
			children[m.DownRevision] = append(children[m.DownRevision], m.Revision)
		}
	}

	for _, m := range migrations {
		if m.DownRevision != "" {
			if _, ok := byRev[m.DownRevision]; !ok {
				return nil, fmt.Errorf("%w: %s points to %s", ErrUnknownRevision, m.Revision, m.DownRevision)
			}
		}
	}
	for parent, kids := range children {
		if len(kids) > 1 {
			sort.Strings(kids)
			return nil, fmt.Errorf("%w: %s all follow %s", ErrMultipleHeads, strings.Join(kids, ", "), parent)
		}
	}
	switch len(bases) {
	case 0:
		return nil, fmt.Errorf("%w: no base revision (cycle?)", ErrBrokenChain)
	case 1:
	default:
		sort.Strings(bases)
		return nil, fmt.Errorf("%w: %s", ErrMultipleBases, strings.Join(bases, ", "))
	}

	c := &Chain{
		index:  make(map[string]int, len(migrations)),
		labels: make(map[string]string),
	}
	for rev := bases[0]; ; {
		m := byRev[rev]
		c.index[rev] = len(c.ordered)
		c.ordered = append(c.ordered, m)
		kids := children[rev]
		if len(kids) == 0 {
			break
		}
		rev = kids[0]
	}
	if len(c.ordered) != len(migrations) {
		return nil, fmt.Errorf("%w: %d of %d revisions reachable from base", ErrBrokenChain, len(c.ordered), len(migrations))
	}

	for i, m := range c.ordered {
		for _, label := range m.BranchLabels {
			if other, ok := c.labels[label]; ok {
				return nil, fmt.Errorf("branch label %q used by both %s and %s", label, other, m.Revision)
			}
			c.labels[label] = m.Revision
		}
		for _, dep := range m.DependsOn {
			depIdx, ok := c.index[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownRevision, m.Revision, dep)
			}
			if depIdx >= i {
				return nil, fmt.Errorf("%w: %s depends on later revision %s", ErrBrokenChain, m.Revision, dep)
			}
		}
	}

	return c, nil
}

// Migrations returns the chain from base to head.
func (c *Chain) Migrations() []*Migration {
	out := make([]*Migration, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Head returns the newest revision id.
func (c *Chain) Head() string {
	return c.ordered[len(c.ordered)-1].Revision
}

// position returns the number of migrations applied at rev. Base is 0.
func (c *Chain) position(rev string) (int, error) {
	if rev == "" {
		return 0, nil
	}
	idx, ok := c.index[rev]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRevision, rev)
	}
	return idx + 1, nil
}

// resolve turns a target into a chain position relative to current.
// Accepted: "head", "base", a revision id, a branch label, or "+N"/"-N".
func (c *Chain) resolve(current, target string) (int, error) {
	cur, err := c.position(current)
	if err != nil {
		return 0, err
	}

	switch {
	case target == Head:
		return len(c.ordered), nil
	case target == Base:
		return 0, nil
	case strings.HasPrefix(target, "+") || strings.HasPrefix(target, "-"):
		n, err := strconv.Atoi(target)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
		}
		pos := cur + n
		if pos < 0 || pos > len(c.ordered) {
			return 0, fmt.Errorf("%w: %q moves outside the chain", ErrInvalidTarget, target)
		}
		return pos, nil
	}

	if rev, ok := c.labels[target]; ok {
		target = rev
	}
	if _, ok := c.index[target]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRevision, target)
	}
	return c.position(target)
}

// UpgradePlan lists the migrations to apply, in order, to move from current to target.
func (c *Chain) UpgradePlan(current, target string) ([]*Migration, error) {
	cur, err := c.position(current)
	if err != nil {
		return nil, err
	}
	to, err := c.resolve(current, target)
	if err != nil {
		return nil, err
	}
	if to < cur {
		return nil, fmt.Errorf("%w: %s is behind the current revision; use downgrade", ErrInvalidTarget, target)
	}
	return c.Migrations()[cur:to], nil
}

// DowngradePlan lists the migrations to revert, newest first, to move from current to target.
func (c *Chain) DowngradePlan(current, target string) ([]*Migration, error) {
	cur, err := c.position(current)
	if err != nil {
		return nil, err
	}
	to, err := c.resolve(current, target)
	if err != nil {
		return nil, err
	}
	if to > cur {
		return nil, fmt.Errorf("%w: %s is ahead of the current revision; use upgrade", ErrInvalidTarget, target)
	}
	plan := make([]*Migration, 0, cur-to)
	for i := cur - 1; i >= to; i-- {
		plan = append(plan, c.ordered[i])
	}
	return plan, nil
}

// RenderNew returns the content of a new migration file that follows downRevision.
func RenderNew(revision, downRevision, message string) ([]byte, error) {
	tmpl, err := template.New("migration").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("parse migration template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Revision, DownRevision, Message string
	}{revision, downRevision, strings.Join(strings.Fields(message), " ")})
	if err != nil {
		return nil, fmt.Errorf("render migration template: %w", err)
	}
	return buf.Bytes(), nil
}

func isNone(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "none")
}

func splitList(v string) []string {
	if isNone(v) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Slug turns a migration message into a file-name fragment like "add_player_index".
func Slug(message string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(message) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			underscore = false
		case b.Len() > 0 && !underscore:
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
