package sheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/qss/style"
)

// Parse parses stylesheet source text into a RuleSet.
//
// In Strict mode, the first defect aborts the parse: Parse returns a
// nil RuleSet and a *ParseError. In Lenient mode, defective rules (or
// single defective declarations) are dropped, parsing continues, and
// the accumulated defects are available from RuleSet.Issues.
func Parse(src string, mode Mode) (*RuleSet, error) {
	p := &sheetParser{mode: mode, rs: &RuleSet{}}
	if err := p.run(scanner.New(src)); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %d rules, %d issues", len(p.rs.rules), len(p.rs.issues))
	return p.rs, nil
}

type sheetParser struct {
	mode  Mode
	rs    *RuleSet
	order int // source order, incremented once per block
}

// report handles a defect according to the parsing mode: in strict mode
// it is returned (aborting the parse), in lenient mode it is recorded.
func (p *sheetParser) report(err *ParseError) error {
	if p.mode == Strict {
		return err
	}
	tracer().Infof("dropping defective input: %v", err)
	p.rs.issues = append(p.rs.issues, err)
	return nil
}

func (p *sheetParser) run(s *scanner.Scanner) error {
	var prelude strings.Builder
	line, col := 1, 1 // location of the current prelude resp. block
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if strings.TrimSpace(prelude.String()) != "" {
				return p.report(&ParseError{
					Kind:    UnterminatedBlock,
					Line:    line,
					Column:  col,
					Message: "missing '{' block for selector " + strings.TrimSpace(prelude.String()),
				})
			}
			return nil
		case scanner.TokenError:
			if err := p.report(syntaxError(tok.Line, tok.Column, "%s", tok.Value)); err != nil {
				return err
			}
			return nil // the tokenizer cannot continue past this
		case scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC:
			// ignored
		case scanner.TokenS:
			if prelude.Len() > 0 {
				prelude.WriteByte(' ')
			}
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				body, berr := collectBlock(s, tok.Line, tok.Column)
				if berr != nil {
					if err := p.report(berr); err != nil {
						return err
					}
					return nil // tokenizer exhausted either way
				}
				if err := p.block(prelude.String(), body, line, col); err != nil {
					return err
				}
				prelude.Reset()
			case "}":
				if err := p.report(syntaxError(tok.Line, tok.Column, "unexpected '}'")); err != nil {
					return err
				}
				prelude.Reset()
			default:
				if prelude.Len() == 0 {
					line, col = tok.Line, tok.Column
				}
				prelude.WriteString(tok.Value)
			}
		default:
			if prelude.Len() == 0 {
				line, col = tok.Line, tok.Column
			}
			prelude.WriteString(tok.Value)
		}
	}
}

// collectBlock consumes tokens up to the '}' matching the '{' just read,
// returning the raw block body.
func collectBlock(s *scanner.Scanner, line, col int) (string, *ParseError) {
	var body strings.Builder
	depth := 1
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return "", &ParseError{
				Kind:    UnterminatedBlock,
				Line:    line,
				Column:  col,
				Message: "block is not closed before end of input",
			}
		case scanner.TokenError:
			return "", syntaxError(tok.Line, tok.Column, "%s", tok.Value)
		case scanner.TokenComment:
			// ignored
		case scanner.TokenS:
			body.WriteByte(' ')
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				depth++
			case "}":
				depth--
				if depth == 0 {
					return body.String(), nil
				}
			}
			if depth > 0 {
				body.WriteString(tok.Value)
			}
		default:
			body.WriteString(tok.Value)
		}
	}
}

// block turns one "prelude { body }" block into rules, one per selector
// of the prelude's comma-separated list, all sharing the declarations
// and the block's source order.
func (p *sheetParser) block(prelude, body string, line, col int) error {
	order := p.order
	p.order++
	selectors, serr := ParseSelectorList(prelude)
	if serr != nil {
		pe := serr.(*ParseError)
		pe.Line, pe.Column = line, col
		return p.report(pe)
	}
	decls, derr := p.declarations(body, line, col)
	if derr != nil {
		return derr
	}
	if decls == nil {
		return nil // defective body, rule dropped in lenient mode
	}
	for _, sel := range selectors {
		rule := &Rule{
			selector:     sel,
			declarations: decls,
			sourceOrder:  order,
		}
		p.rs.rules = append(p.rs.rules, rule)
		for _, seg := range sel.Segments[:len(sel.Segments)-1] {
			p.rs.ancestorStates |= seg.States | seg.Negated
		}
	}
	return nil
}

// declarations parses a block body with the douceur CSS parser and
// validates property names against the style vocabulary. Declarations
// with unknown property names are defects, but they do not invalidate
// the remainder of the block.
func (p *sheetParser) declarations(body string, line, col int) ([]Declaration, error) {
	cssdecls, err := parser.ParseDeclarations(body)
	if err != nil {
		return nil, p.report(syntaxError(line, col, "cannot parse declarations: %v", err))
	}
	decls := make([]Declaration, 0, len(cssdecls))
	for _, d := range cssdecls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if !style.KnownProperty(key) {
			pe := &ParseError{
				Kind:    UnknownProperty,
				Line:    line,
				Column:  col,
				Message: "unknown property '" + key + "'",
			}
			if err := p.report(pe); err != nil {
				return nil, err
			}
			continue // skip just this declaration
		}
		decls = append(decls, Declaration{
			Property:  key,
			Value:     style.Property(strings.TrimSpace(d.Value)),
			Important: d.Important,
		})
	}
	return decls, nil
}
