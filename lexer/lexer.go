package lexer

import (
	"strings"

	"github.com/modal-labs/dockerfile-parser/ast"
)

// Tokenize splits src into top-level comment nodes and instruction trees, in
// source order.
func Tokenize(src string) []*Node {
	l := &lexer{src: src}
	var nodes []*Node
	for {
		l.skipBlank()
		if l.eof() {
			return nodes
		}
		if l.src[l.pos] == '#' {
			nodes = append(nodes, l.commentLine())
			continue
		}
		nodes = append(nodes, l.instruction())
	}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) node(kind Kind, start, end int, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Span:     ast.NewSpan(start, end),
		Text:     l.src[start:end],
		Children: children,
	}
}

// skipBlank advances over whitespace between top-level items, including
// newlines.
func (l *lexer) skipBlank() {
	for !l.eof() {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

// skipSpaces advances over spaces and tabs within a line.
func (l *lexer) skipSpaces() {
	for !l.eof() && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
}

// lineEnd returns the offset of the next newline at or after pos, or the end
// of input.
func (l *lexer) lineEnd(pos int) int {
	for pos < len(l.src) && l.src[pos] != '\n' {
		pos++
	}
	return pos
}

// continuationAt reports whether pos sits on a backslash that escapes the
// following line break (optionally with trailing spaces before the newline,
// which some editors leave behind).
func (l *lexer) continuationAt(pos int) bool {
	if pos >= len(l.src) || l.src[pos] != '\\' {
		return false
	}
	pos++
	for pos < len(l.src) && (l.src[pos] == ' ' || l.src[pos] == '\t') {
		pos++
	}
	return pos >= len(l.src) || l.src[pos] == '\n'
}

// consumeContinuation advances past a continuation recognized by
// continuationAt: the backslash, any trailing spaces, and the newline.
func (l *lexer) consumeContinuation() {
	l.pos++ // backslash
	for !l.eof() && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	if !l.eof() && l.src[l.pos] == '\n' {
		l.pos++
	}
}

func (l *lexer) commentLine() *Node {
	start := l.pos
	end := l.lineEnd(l.pos)
	l.pos = end
	if !l.eof() {
		l.pos++ // newline
	}
	return l.node(KindComment, start, end)
}

// instruction reads one instruction starting at the current position. The
// first word picks the family; unknown words become misc instructions.
func (l *lexer) instruction() *Node {
	start := l.pos
	kwEnd := l.pos
	for kwEnd < len(l.src) && !isSpace(l.src[kwEnd]) && l.src[kwEnd] != '\n' {
		kwEnd++
	}
	keyword := l.src[start:kwEnd]
	l.pos = kwEnd

	switch strings.ToLower(keyword) {
	case "from":
		return l.fromInstruction(start)
	case "arg":
		return l.argInstruction(start)
	case "env":
		return l.pairsInstruction(start, KindEnv)
	case "label":
		return l.pairsInstruction(start, KindLabel)
	case "copy":
		return l.copyInstruction(start)
	case "run":
		return l.runInstruction(start)
	case "cmd":
		return l.shellLikeInstruction(start, KindCmd)
	case "entrypoint":
		return l.shellLikeInstruction(start, KindEntrypoint)
	default:
		return l.miscInstruction(start, kwEnd)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// ---------------------------------------------------------------------------
// Word-based logical lines (COPY, FROM, ARG, ENV, LABEL)

type lineItemKind int

const (
	itemWord lineItemKind = iota
	itemOpener
	itemComment
)

type lineItem struct {
	kind       lineItemKind
	start, end int
	// delimiter identifier extent, openers only
	delimStart, delimEnd int
}

func (it lineItem) text(src string) string {
	return src[it.start:it.end]
}

// scanLine reads the instruction's whole logical line: words, heredoc openers
// when asked for, and the comment and blank lines interleaved between
// continuations. It stops after an unescaped newline or at end of input.
func (l *lexer) scanLine(detectHeredoc bool) []lineItem {
	var items []lineItem
	for {
		l.skipSpaces()
		if l.eof() {
			return items
		}
		if l.src[l.pos] == '\n' {
			l.pos++
			return items
		}
		if l.continuationAt(l.pos) {
			l.consumeContinuation()
			if !l.resumeAfterBreak(&items) {
				return items
			}
			continue
		}
		if detectHeredoc && strings.HasPrefix(l.src[l.pos:], "<<") {
			items = append(items, l.heredocOpener())
			continue
		}
		items = append(items, l.word())
	}
}

// resumeAfterBreak classifies the lines that follow a continuation: blank
// lines are skipped, comment lines are captured, and the first content line
// resumes the instruction. Returns false at end of input.
func (l *lexer) resumeAfterBreak(items *[]lineItem) bool {
	for {
		mark := l.pos
		l.skipSpaces()
		if l.eof() {
			return false
		}
		switch l.src[l.pos] {
		case '\n':
			l.pos++
		case '#':
			start := l.pos
			end := l.lineEnd(l.pos)
			*items = append(*items, lineItem{kind: itemComment, start: start, end: end})
			l.pos = end
			if !l.eof() {
				l.pos++
			}
		default:
			l.pos = mark
			return true
		}
	}
}

// word reads one whitespace-delimited word, keeping quoted regions together
// and honoring backslash escapes outside quotes.
func (l *lexer) word() lineItem {
	start := l.pos
	for !l.eof() {
		c := l.src[l.pos]
		if c == '\n' || isSpace(c) {
			break
		}
		if l.continuationAt(l.pos) {
			break
		}
		switch c {
		case '"', '\'':
			l.skipQuoted(c)
		case '\\':
			l.pos++
			if !l.eof() && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			l.pos++
		}
	}
	return lineItem{kind: itemWord, start: start, end: l.pos}
}

// skipQuoted advances past a quoted region opened by quote. Double quotes
// honor backslash escapes; single quotes are literal throughout.
func (l *lexer) skipQuoted(quote byte) {
	l.pos++ // opening quote
	for !l.eof() {
		c := l.src[l.pos]
		if c == quote {
			l.pos++
			return
		}
		if c == '\n' {
			return // unterminated; leave the newline for the caller
		}
		if quote == '"' && c == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}
		l.pos++
	}
}

// heredocOpener reads `<<DELIM`, tolerating a dash and whitespace before the
// delimiter and quoting around it.
func (l *lexer) heredocOpener() lineItem {
	start := l.pos
	l.pos += 2 // <<
	if !l.eof() && l.src[l.pos] == '-' {
		l.pos++
	}
	l.skipSpaces()
	delimStart := l.pos
	if !l.eof() && (l.src[l.pos] == '"' || l.src[l.pos] == '\'') {
		l.skipQuoted(l.src[l.pos])
	} else {
		for !l.eof() && isDelimChar(l.src[l.pos]) {
			l.pos++
		}
	}
	return lineItem{
		kind:       itemOpener,
		start:      start,
		end:        l.pos,
		delimStart: delimStart,
		delimEnd:   l.pos,
	}
}

func isDelimChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-':
		return true
	}
	return false
}

// unquoteDelim strips the quoting around a heredoc delimiter so the body
// scanner can compare terminator lines against the bare identifier.
func unquoteDelim(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// ---------------------------------------------------------------------------
// Heredoc bodies

type heredocCapture struct {
	bodyStart, bodyEnd int
	termStart, termEnd int // terminator line including its newline
	hasTerm            bool
}

// readHeredocBodies consumes body lines for each pending opener, in the order
// the openers appeared. A line whose text equals any still-pending delimiter
// ends the current body and becomes a terminator node; deciding whether that
// line closes the right delimiter is the assembler's job, not the lexer's.
// Openers left open at end of input produce captures without a terminator.
func (l *lexer) readHeredocBodies(delims []string) []heredocCapture {
	caps := make([]heredocCapture, 0, len(delims))
	remaining := delims
	for len(remaining) > 0 {
		capture := heredocCapture{bodyStart: l.pos, bodyEnd: l.pos}
		for !l.eof() {
			lineStart := l.pos
			end := l.lineEnd(lineStart)
			next := end
			if next < len(l.src) {
				next++ // newline
			}
			if textMatchesAny(l.src[lineStart:end], remaining) {
				capture.bodyEnd = lineStart
				capture.termStart = lineStart
				capture.termEnd = next
				capture.hasTerm = true
				l.pos = next
				break
			}
			l.pos = next
			capture.bodyEnd = l.pos
		}
		remaining = remaining[1:]
		caps = append(caps, capture)
	}
	return caps
}

func textMatchesAny(text string, delims []string) bool {
	for _, d := range delims {
		if text == d {
			return true
		}
	}
	return false
}

// terminatorNode builds the KindHeredocTerm node for a capture. The span ends
// before the trailing newline so it nests inside the heredoc and instruction
// spans, while Text keeps the newline: the exact-equality check against
// `delimiter+"\n"` needs to see whether the line was newline-terminated.
func (l *lexer) terminatorNode(c heredocCapture) *Node {
	return &Node{
		Kind: KindHeredocTerm,
		Span: ast.NewSpan(c.termStart, l.captureEnd(c)),
		Text: l.src[c.termStart:c.termEnd],
	}
}

// captureEnd returns the end of a capture's extent excluding the terminator's
// trailing newline, for instruction spans.
func (l *lexer) captureEnd(c heredocCapture) int {
	if !c.hasTerm {
		return c.bodyEnd
	}
	end := c.termEnd
	if end > c.termStart && l.src[end-1] == '\n' {
		end--
	}
	return end
}

// ---------------------------------------------------------------------------
// COPY

func (l *lexer) copyInstruction(start int) *Node {
	items := l.scanLine(true)

	var openers []lineItem
	for _, it := range items {
		if it.kind == itemOpener {
			openers = append(openers, it)
		}
	}

	if len(openers) == 0 {
		var children []*Node
		end := l.pos
		for _, it := range items {
			children = append(children, l.classifyCopyItem(it))
			end = it.end
		}
		if len(items) == 0 {
			end = start + len("copy")
		}
		sub := l.node(KindCopyStandard, spanOfItems(items, end), end, children...)
		return l.node(KindCopy, start, end, sub)
	}

	var children []*Node
	for _, it := range items {
		if it.kind == itemOpener {
			children = append(children, l.node(KindHeredocDelim, it.delimStart, it.delimEnd))
			continue
		}
		children = append(children, l.classifyCopyItem(it))
	}

	delims := make([]string, len(openers))
	for i, op := range openers {
		delims[i] = unquoteDelim(l.src[op.delimStart:op.delimEnd])
	}
	caps := l.readHeredocBodies(delims)

	end := l.pos
	for _, c := range caps {
		children = append(children, l.node(KindHeredocBody, c.bodyStart, c.bodyEnd))
		if c.hasTerm {
			children = append(children, l.terminatorNode(c))
		}
		end = l.captureEnd(c)
	}

	sub := l.node(KindCopyHeredoc, items[0].start, end, children...)
	return l.node(KindCopy, start, end, sub)
}

func (l *lexer) classifyCopyItem(it lineItem) *Node {
	switch {
	case it.kind == itemComment:
		return l.node(KindComment, it.start, it.end)
	case strings.HasPrefix(it.text(l.src), "--"):
		return l.keyValueNode(it, KindFlag, KindFlagName, KindFlagValue)
	default:
		return l.node(KindPathSpec, it.start, it.end)
	}
}

// spanOfItems returns the start of the first item, or fallback when there are
// none.
func spanOfItems(items []lineItem, fallback int) int {
	if len(items) == 0 {
		return fallback
	}
	return items[0].start
}

// keyValueNode splits a `--name=value` word into its parts. A missing name or
// value simply omits the child; the assembler reports the shape violation.
func (l *lexer) keyValueNode(it lineItem, whole, nameKind, valueKind Kind) *Node {
	text := it.text(l.src)
	var children []*Node
	rest := text[2:]
	if i := strings.IndexByte(rest, '='); i >= 0 {
		nameStart := it.start + 2
		if i > 0 {
			children = append(children, l.node(nameKind, nameStart, nameStart+i))
		}
		children = append(children, l.node(valueKind, nameStart+i+1, it.end))
	} else if len(rest) > 0 {
		children = append(children, l.node(nameKind, it.start+2, it.end))
	}
	return l.node(whole, it.start, it.end, children...)
}

// ---------------------------------------------------------------------------
// RUN, CMD, ENTRYPOINT, and misc bodies

func (l *lexer) runInstruction(start int) *Node {
	var children []*Node
	end := start + len("run")

	// Leading options and the comment lines interleaved among them.
	empty := false
	for {
		if !l.skipToContent(&children) {
			empty = true
			break
		}
		if l.src[l.pos] == '\n' {
			l.pos++
			empty = true
			break
		}
		if !l.looksLikeOption() {
			break
		}
		it := l.word()
		children = append(children, l.keyValueNode(it, KindOption, KindOptionName, KindOptionValue))
		end = it.end
	}

	if !empty {
		if body, bodyEnd, ok := l.instructionBody(true); ok {
			children = append(children, body)
			end = bodyEnd
		}
	}
	return l.node(KindRun, start, end, children...)
}

func (l *lexer) shellLikeInstruction(start int, kind Kind) *Node {
	var children []*Node
	hasBody := l.skipToContent(&children)
	end := l.pos
	if hasBody && l.src[l.pos] != '\n' {
		if exec, ok := l.tryExecArray(); ok {
			children = append(children, exec)
			end = exec.Span.End
		} else if breakable, _, ok := l.breakable(l.pos, false); ok {
			children = append(children, breakable)
			end = breakable.Span.End
		}
	} else if hasBody {
		l.pos++ // empty body, consume the newline
	}
	return l.node(kind, start, end, children...)
}

func (l *lexer) miscInstruction(start, kwEnd int) *Node {
	name := l.node(KindInstructionName, start, kwEnd)
	var children []*Node
	children = append(children, name)

	hasBody := l.skipToContent(&children)
	bodyStart := l.pos
	end := kwEnd
	if hasBody && l.src[l.pos] != '\n' {
		if breakable, _, ok := l.breakable(bodyStart, false); ok {
			children = append(children, breakable)
			end = breakable.Span.End
		}
	} else {
		if hasBody {
			l.pos++
		}
		// no arguments: an empty breakable keeps the record shape uniform
		children = append(children, l.node(KindBreakable, kwEnd, kwEnd))
	}
	return l.node(KindMisc, start, end, children...)
}

// instructionBody reads a RUN body: an exec-form array, or a shell wrapper
// holding an optional breakable expression and any heredoc blocks. Returns
// false when the body is missing entirely.
func (l *lexer) instructionBody(allowHeredoc bool) (*Node, int, bool) {
	if l.eof() {
		return nil, 0, false
	}
	if exec, ok := l.tryExecArray(); ok {
		return exec, exec.Span.End, true
	}

	bodyStart := l.pos
	var shellChildren []*Node
	breakable, atHeredoc, hasBreakable := l.breakable(bodyStart, allowHeredoc)
	if hasBreakable {
		shellChildren = append(shellChildren, breakable)
	}

	end := bodyStart
	if hasBreakable {
		end = breakable.Span.End
	}

	if atHeredoc {
		heredocs, hend := l.heredocBlocks()
		shellChildren = append(shellChildren, heredocs...)
		end = hend
	}

	if len(shellChildren) == 0 {
		return nil, 0, false
	}
	return l.node(KindShell, bodyStart, end, shellChildren...), end, true
}

// skipToContent advances over spaces, continuations, blank lines, and comment
// lines (captured into children) until it reaches content, a bare newline, or
// end of input. Returns false at end of input.
func (l *lexer) skipToContent(children *[]*Node) bool {
	for {
		l.skipSpaces()
		if l.eof() {
			return false
		}
		if l.continuationAt(l.pos) {
			l.consumeContinuation()
			var items []lineItem
			ok := l.resumeAfterBreak(&items)
			for _, it := range items {
				*children = append(*children, l.node(KindComment, it.start, it.end))
			}
			if !ok {
				return false
			}
			continue
		}
		return true
	}
}

// looksLikeOption reports whether the word at the current position has the
// `--name=value` shape.
func (l *lexer) looksLikeOption() bool {
	if !strings.HasPrefix(l.src[l.pos:], "--") {
		return false
	}
	for i := l.pos + 2; i < len(l.src); i++ {
		c := l.src[i]
		if c == '=' {
			return true
		}
		if isSpace(c) || c == '\n' {
			return false
		}
	}
	return false
}

// breakable reads a breakable shell expression: literal fragments split at
// escaped line breaks, with interleaved comment lines as their own fragments.
// Scanning stops at an unescaped newline, at end of input, or (when
// stopAtHeredoc is set) at a `<<` outside quotes; atHeredoc reports the last
// case so the caller knows an opener follows on the same logical line. The
// final return is false when no fragments were produced, which happens for
// empty and bare-heredoc bodies.
func (l *lexer) breakable(bodyStart int, stopAtHeredoc bool) (node *Node, atHeredoc, ok bool) {
	var children []*Node
	var inSingle, inDouble bool
	fragStart := l.pos

	closeFragment := func(end int) {
		if end > fragStart {
			children = append(children, l.node(KindShellLiteral, fragStart, end))
		}
	}

scan:
	for {
		if l.eof() {
			closeFragment(l.pos)
			break
		}
		c := l.src[l.pos]
		switch {
		case c == '\n':
			closeFragment(l.pos)
			l.pos++
			break scan
		case l.continuationAt(l.pos) && !inSingle && !inDouble:
			closeFragment(l.pos)
			l.consumeContinuation()
			if !l.resumeBreakable(&children) {
				break scan
			}
			fragStart = l.pos
		case stopAtHeredoc && !inSingle && !inDouble && strings.HasPrefix(l.src[l.pos:], "<<"):
			closeFragment(l.pos)
			atHeredoc = true
			break scan
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			l.pos++
		case c == '"' && !inSingle:
			inDouble = !inDouble
			l.pos++
		case c == '\\' && inDouble && l.pos+1 < len(l.src) && l.src[l.pos+1] != '\n':
			l.pos += 2
		default:
			l.pos++
		}
	}

	if len(children) == 0 {
		return nil, atHeredoc, false
	}
	span := ast.NewSpan(bodyStart, children[len(children)-1].Span.End)
	return &Node{
		Kind:     KindBreakable,
		Span:     span,
		Text:     l.src[span.Start:span.End],
		Children: children,
	}, atHeredoc, true
}

// resumeBreakable classifies lines after a continuation inside a breakable
// expression: blank lines are skipped, comment lines become comment
// fragments, and the first content line (including its leading whitespace)
// resumes the literal text. Returns false at end of input.
func (l *lexer) resumeBreakable(children *[]*Node) bool {
	for {
		lineStart := l.pos
		l.skipSpaces()
		if l.eof() {
			return false
		}
		switch l.src[l.pos] {
		case '\n':
			l.pos++
		case '#':
			start := l.pos
			end := l.lineEnd(l.pos)
			*children = append(*children, l.node(KindComment, start, end))
			l.pos = end
			if !l.eof() {
				l.pos++
			}
		default:
			l.pos = lineStart
			return true
		}
	}
}

// heredocBlocks reads the heredoc openers at the current position, the rest
// of their opening line, and then one body per opener. Each opener becomes a
// KindHeredoc node; an opener left open at end of input produces a node
// without a terminator child.
func (l *lexer) heredocBlocks() ([]*Node, int) {
	var openers []lineItem
	var inSingle, inDouble bool
	for !l.eof() && l.src[l.pos] != '\n' {
		c := l.src[l.pos]
		switch {
		case !inSingle && !inDouble && strings.HasPrefix(l.src[l.pos:], "<<"):
			openers = append(openers, l.heredocOpener())
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			l.pos++
		case c == '"' && !inSingle:
			inDouble = !inDouble
			l.pos++
		default:
			l.pos++
		}
	}
	if !l.eof() {
		l.pos++ // the opening line's newline
	}

	delims := make([]string, len(openers))
	for i, op := range openers {
		delims[i] = unquoteDelim(l.src[op.delimStart:op.delimEnd])
	}
	caps := l.readHeredocBodies(delims)

	var nodes []*Node
	end := l.pos
	for i, op := range openers {
		c := caps[i]
		children := []*Node{
			l.node(KindHeredocDelim, op.delimStart, op.delimEnd),
			l.node(KindHeredocBody, c.bodyStart, c.bodyEnd),
		}
		if c.hasTerm {
			children = append(children, l.terminatorNode(c))
		}
		blockEnd := l.captureEnd(c)
		nodes = append(nodes, l.node(KindHeredoc, op.start, blockEnd, children...))
		end = blockEnd
	}
	return nodes, end
}

// tryExecArray attempts to read an exec-form array at the current position.
// On failure the position is restored and the body falls back to shell form,
// matching how build engines treat malformed JSON arrays.
func (l *lexer) tryExecArray() (*Node, bool) {
	save := l.pos
	if l.eof() || l.src[l.pos] != '[' {
		return nil, false
	}
	start := l.pos
	l.pos++

	var elems []*Node
	l.skipArrayGaps()
	for !l.eof() && l.src[l.pos] != ']' {
		elem, ok := l.execString()
		if !ok {
			l.pos = save
			return nil, false
		}
		elems = append(elems, elem)
		l.skipArrayGaps()
		if !l.eof() && l.src[l.pos] == ',' {
			l.pos++
			l.skipArrayGaps()
			continue
		}
		break
	}
	if l.eof() || l.src[l.pos] != ']' {
		l.pos = save
		return nil, false
	}
	l.pos++
	end := l.pos

	// only trailing whitespace may follow on the line
	l.skipSpaces()
	if !l.eof() {
		if l.src[l.pos] != '\n' {
			l.pos = save
			return nil, false
		}
		l.pos++
	}
	return l.node(KindExec, start, end, elems...), true
}

// skipArrayGaps advances over whitespace inside an exec-form array, treating
// escaped line breaks as whitespace.
func (l *lexer) skipArrayGaps() {
	for {
		l.skipSpaces()
		if l.continuationAt(l.pos) {
			l.consumeContinuation()
			continue
		}
		return
	}
}

// execString reads one double-quoted array element.
func (l *lexer) execString() (*Node, bool) {
	if l.eof() || l.src[l.pos] != '"' {
		return nil, false
	}
	start := l.pos
	l.pos++
	for !l.eof() {
		c := l.src[l.pos]
		if c == '"' {
			l.pos++
			return l.node(KindString, start, l.pos), true
		}
		if c == '\n' {
			return nil, false
		}
		if c == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}
		l.pos++
	}
	return nil, false
}

// ---------------------------------------------------------------------------
// FROM, ARG, ENV, LABEL

func (l *lexer) fromInstruction(start int) *Node {
	items := l.scanLine(false)
	var children []*Node
	end := start + len("from")

	imageSeen := false
	asSeen := false
	aliasSeen := false
	var asItem lineItem
	for _, it := range items {
		if it.end > end {
			end = it.end
		}
		switch {
		case it.kind == itemComment:
			children = append(children, l.node(KindComment, it.start, it.end))
		case strings.HasPrefix(it.text(l.src), "--"):
			children = append(children, l.keyValueNode(it, KindFlag, KindFlagName, KindFlagValue))
		case !imageSeen:
			children = append(children, l.node(KindImageName, it.start, it.end))
			imageSeen = true
		case !asSeen && strings.EqualFold(it.text(l.src), "as"):
			asSeen = true
			asItem = it
		case asSeen && !aliasSeen:
			children = append(children, l.node(KindStageAlias, it.start, it.end))
			aliasSeen = true
		default:
			children = append(children, l.node(KindWord, it.start, it.end))
		}
	}
	if asSeen && !aliasSeen {
		// `AS` with no name after it: surface the dangling keyword
		children = append(children, l.node(KindWord, asItem.start, asItem.end))
	}
	return l.node(KindFrom, start, end, children...)
}

func (l *lexer) argInstruction(start int) *Node {
	items := l.scanLine(false)
	var children []*Node
	end := start + len("arg")

	nameSeen := false
	for _, it := range items {
		if it.end > end {
			end = it.end
		}
		switch {
		case it.kind == itemComment:
			children = append(children, l.node(KindComment, it.start, it.end))
		case !nameSeen:
			children = append(children, l.splitPairParts(it, false)...)
			nameSeen = true
		default:
			children = append(children, l.node(KindWord, it.start, it.end))
		}
	}
	return l.node(KindArg, start, end, children...)
}

// pairsInstruction lexes ENV and LABEL. When the first word carries an
// unquoted `=` every word is a key=value pair; otherwise the legacy
// single-binding form applies and the rest of the line is the value verbatim.
func (l *lexer) pairsInstruction(start int, kind Kind) *Node {
	kwEnd := l.pos
	items := l.scanLine(false)
	var children []*Node
	end := kwEnd

	var words []lineItem
	for _, it := range items {
		if it.end > end {
			end = it.end
		}
		if it.kind == itemComment {
			children = append(children, l.node(KindComment, it.start, it.end))
			continue
		}
		words = append(words, it)
	}

	if len(words) == 0 {
		return l.node(kind, start, end, children...)
	}

	if splitEquals(l.src, words[0]) < 0 {
		// legacy form: KEY then everything else as one raw value
		children = append(children, l.node(KindKey, words[0].start, words[0].end))
		if len(words) > 1 {
			children = append(children, l.node(KindValue, words[1].start, words[len(words)-1].end))
		}
		return l.node(kind, start, end, children...)
	}

	for _, w := range words {
		if splitEquals(l.src, w) < 0 {
			children = append(children, l.node(KindWord, w.start, w.end))
			continue
		}
		pair := l.node(KindPair, w.start, w.end, l.splitPairParts(w, true)...)
		children = append(children, pair)
	}
	return l.node(kind, start, end, children...)
}

// splitPairParts splits a word at its first unquoted `=` into key and value
// nodes. With requireValue unset (ARG) a word without `=` is just a key.
func (l *lexer) splitPairParts(it lineItem, requireValue bool) []*Node {
	i := splitEquals(l.src, it)
	if i < 0 {
		if requireValue {
			return []*Node{l.node(KindWord, it.start, it.end)}
		}
		return []*Node{l.node(KindKey, it.start, it.end)}
	}
	return []*Node{
		l.node(KindKey, it.start, it.start+i),
		l.node(KindValue, it.start+i+1, it.end),
	}
}

// splitEquals returns the offset within the word of the first `=` outside
// quotes, or -1.
func splitEquals(src string, it lineItem) int {
	var inSingle, inDouble bool
	for i := it.start; i < it.end; i++ {
		c := src[i]
		switch {
		case c == '=' && !inSingle && !inDouble:
			return i - it.start
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '\\' && inDouble:
			i++
		}
	}
	return -1
}
