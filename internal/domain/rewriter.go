package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain/naming"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

var (
	pascalSuffixes     = []string{"Screenset", "Screen", "Events", "Slice", "State", "Actions", "Api"}
	importPathSuffixes = []string{"Actions", "Events", "Slice", "Screen"}
	identifierSuffixes = []string{"Screenset", "Screen", "Events", "Slice", "State", "Actions"}

	quoteChars = []string{"'", `"`, "`"}

	// Static `from '...'` / `import '...'` specifiers and dynamic `import('...')` calls.
	importSpecifierPattern = regexp.MustCompile(
		"\\b(from|import)\\s*(\\(\\s*)?(?:'([^'\\r\\n]*)'|\"([^\"\\r\\n]*)\"|`([^`\\r\\n]*)`)",
	)

	categoryPattern = regexp.MustCompile(`\bScreensetCategory\.([A-Za-z]+)\b`)
)

// edit replaces content[start:end] with replacement.
type edit struct {
	start       int
	end         int
	replacement string
}

// rule finds candidate edits in the original content. Rules are listed by priority.
type rule struct {
	name  string
	match func(content string) []edit
}

// Rewriter renames every reference to a source screenset inside a file's text.
//
// It is a best-effort lexical substitution, not a semantic rename: it has no notion of
// scopes, comments or the syntax of the underlying language. All rules are matched against
// the original text; when spans overlap the higher-priority rule wins and the loser is
// dropped, so every byte of input is rewritten at most once.
type Rewriter struct {
	source          m.ScreensetID
	target          m.ScreensetID
	transformations []m.IDTransformation
	category        m.Category

	camelSource  string
	camelTarget  string
	pascalSource string
	pascalTarget string

	rules []rule
}

// RewriterOption customizes a Rewriter.
type RewriterOption func(*Rewriter)

// WithCategory rewrites `ScreensetCategory.X` references to the given category.
func WithCategory(category m.Category) RewriterOption {
	return func(r *Rewriter) {
		r.category = category
	}
}

// NewRewriter builds a Rewriter for one source/target pair and transformation map.
func NewRewriter(source, target m.ScreensetID, transformations []m.IDTransformation, options ...RewriterOption) *Rewriter {
	r := &Rewriter{
		source:          source,
		target:          target,
		transformations: transformations,
		camelSource:     naming.ToCamelCase(string(source)),
		camelTarget:     naming.ToCamelCase(string(target)),
		pascalSource:    naming.ToPascalCase(string(source)),
		pascalTarget:    naming.ToPascalCase(string(target)),
	}

	for _, option := range options {
		option(r)
	}

	r.rules = []rule{
		{name: "constant-names", match: r.matchConstantNames},
		{name: "declared-literals", match: r.matchDeclaredLiterals},
		{name: "import-paths", match: r.matchImportPaths},
		{name: "pascal-identifiers", match: r.matchPascalIdentifiers},
		{name: "camel-path-segments", match: r.matchCamelPathSegments},
		{name: "camel-identifiers", match: r.matchCamelIdentifiers},
		{name: "screenset-literal", match: r.matchScreensetLiteral},
		{name: "translation-keys", match: r.matchTranslationKeys},
	}

	if r.category != "" {
		r.rules = append(r.rules, rule{name: "category", match: r.matchCategory})
	}

	return r
}

// RewriteContent is a convenience wrapper around NewRewriter(...).Rewrite(content).
func RewriteContent(content string, source, target m.ScreensetID, transformations []m.IDTransformation) string {
	return NewRewriter(source, target, transformations).Rewrite(content)
}

// Rewrite returns content with every matched reference renamed. It never fails;
// text no rule matches is returned unchanged.
func (r *Rewriter) Rewrite(content string) string {
	if content == "" {
		return content
	}

	claimed := make([]bool, len(content))

	var accepted []edit

	for _, rl := range r.rules {
		candidates := rl.match(content)
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].start < candidates[j].start
		})

		for _, e := range candidates {
			if e.start >= e.end || overlapsClaimed(claimed, e) {
				continue
			}

			for i := e.start; i < e.end; i++ {
				claimed[i] = true
			}

			accepted = append(accepted, e)
		}
	}

	if len(accepted) == 0 {
		return content
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})

	var b strings.Builder

	b.Grow(len(content))

	last := 0
	for _, e := range accepted {
		b.WriteString(content[last:e.start])
		b.WriteString(e.replacement)
		last = e.end
	}

	b.WriteString(content[last:])

	return b.String()
}

func overlapsClaimed(claimed []bool, e edit) bool {
	for i := e.start; i < e.end; i++ {
		if claimed[i] {
			return true
		}
	}

	return false
}

func (r *Rewriter) matchConstantNames(content string) []edit {
	var edits []edit

	for _, tr := range r.transformations {
		if !tr.NameChanged() {
			continue
		}

		name := tr.OriginalConstName
		accept := func(start, end int) bool {
			return wordBoundaryBefore(content, start) && wordBoundaryAfter(content, end)
		}

		for _, start := range occurrences(content, name, accept) {
			edits = append(edits, edit{start: start, end: start + len(name), replacement: tr.NewConstName})
		}
	}

	return edits
}

func (r *Rewriter) matchDeclaredLiterals(content string) []edit {
	var edits []edit

	for _, tr := range r.transformations {
		if !tr.ValueChanged() || tr.OriginalValue == "" {
			continue
		}

		edits = append(edits, quotedLiteralEdits(content, tr.OriginalValue, tr.NewValue)...)
	}

	return edits
}

// quotedLiteralEdits replaces value when it is the whole body of a quoted literal.
// Only the body is claimed; the quotes stay untouched.
func quotedLiteralEdits(content, value, replacement string) []edit {
	var edits []edit

	for _, quote := range quoteChars {
		needle := quote + value + quote
		for _, start := range occurrences(content, needle, nil) {
			edits = append(edits, edit{
				start:       start + 1,
				end:         start + 1 + len(value),
				replacement: replacement,
			})
		}
	}

	return edits
}

func (r *Rewriter) matchImportPaths(content string) []edit {
	var edits []edit

	for _, loc := range importSpecifierPattern.FindAllStringSubmatchIndex(content, -1) {
		dynamic := loc[4] >= 0

		// The specifier is whichever quote group participated.
		start, end := -1, -1

		for group := 3; group <= 5; group++ {
			if loc[2*group] >= 0 {
				start, end = loc[2*group], loc[2*group+1]
				break
			}
		}

		if start < 0 {
			continue
		}

		specifier := content[start:end]
		keyword := content[loc[2]:loc[3]]

		if dynamic && keyword != "import" {
			continue
		}

		if !dynamic && !strings.HasPrefix(specifier, ".") {
			continue
		}

		rewritten, changed := r.rewriteSpecifier(specifier)
		if !changed {
			continue
		}

		// The whole specifier is claimed so identifier rules never touch file names in it.
		edits = append(edits, edit{start: start, end: end, replacement: rewritten})
	}

	return edits
}

// rewriteSpecifier renames path segments equal to the camelCase source id and segments
// that start with it followed by an uppercase letter (e.g. chatActions).
func (r *Rewriter) rewriteSpecifier(specifier string) (string, bool) {
	if r.camelSource == "" {
		return specifier, false
	}

	segments := strings.Split(specifier, "/")
	changed := false

	for i := 1; i < len(segments); i++ {
		segment := segments[i]

		switch {
		case segment == r.camelSource:
			segments[i] = r.camelTarget
		case strings.HasPrefix(segment, r.camelSource) &&
			len(segment) > len(r.camelSource) &&
			isUpperByte(segment[len(r.camelSource)]):
			segments[i] = r.camelTarget + segment[len(r.camelSource):]
		default:
			continue
		}

		changed = changed || segments[i] != segment
	}

	return strings.Join(segments, "/"), changed
}

func (r *Rewriter) matchPascalIdentifiers(content string) []edit {
	accept := func(_, end int) bool {
		if end >= len(content) {
			return false
		}

		return isUpperByte(content[end]) || hasAnyPrefix(content[end:], pascalSuffixes)
	}

	return replaceAll(content, r.pascalSource, r.pascalTarget, accept)
}

func (r *Rewriter) matchCamelPathSegments(content string) []edit {
	accept := func(start, end int) bool {
		return start > 0 && content[start-1] == '/' && hasAnyPrefix(content[end:], importPathSuffixes)
	}

	return replaceAll(content, r.camelSource, r.camelTarget, accept)
}

func (r *Rewriter) matchCamelIdentifiers(content string) []edit {
	accept := func(start, end int) bool {
		return wordBoundaryBefore(content, start) && hasAnyPrefix(content[end:], identifierSuffixes)
	}

	return replaceAll(content, r.camelSource, r.camelTarget, accept)
}

func (r *Rewriter) matchScreensetLiteral(content string) []edit {
	if r.source == "" {
		return nil
	}

	return quotedLiteralEdits(content, string(r.source), string(r.target))
}

func (r *Rewriter) matchTranslationKeys(content string) []edit {
	var edits []edit

	for _, tr := range r.transformations {
		if !tr.ValueChanged() || tr.OriginalValue == "" {
			continue
		}

		accept := func(_, end int) bool {
			if end >= len(content) {
				return true
			}

			switch content[end] {
			case '.', '}', '`', ':':
				return true
			default:
				return false
			}
		}

		for _, start := range occurrences(content, "."+tr.OriginalValue, accept) {
			edits = append(edits, edit{
				start:       start + 1,
				end:         start + 1 + len(tr.OriginalValue),
				replacement: tr.NewValue,
			})
		}
	}

	return edits
}

func (r *Rewriter) matchCategory(content string) []edit {
	member := strcase.ToCamel(string(r.category))

	var edits []edit

	for _, loc := range categoryPattern.FindAllStringSubmatchIndex(content, -1) {
		edits = append(edits, edit{start: loc[2], end: loc[3], replacement: member})
	}

	return edits
}

func replaceAll(content, needle, replacement string, accept func(start, end int) bool) []edit {
	var edits []edit

	for _, start := range occurrences(content, needle, accept) {
		edits = append(edits, edit{start: start, end: start + len(needle), replacement: replacement})
	}

	return edits
}
