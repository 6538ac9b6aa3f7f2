package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a sequence of gesture statements, one per line:
//
//	hand 12 14 17
//	begin 0
//	hover 1 100 200 160
//	end
//	toggle 2
//	status 1
//	status 0 discard
type Script struct {
	Stmts []Stmt `parser:"( @@ | EOL )*"`
}

type Stmt interface{ stmt() }

// HandStmt replaces the hand with cards of the given ids.
type HandStmt struct {
	Pos lexer.Position
	IDs []string `parser:"\"hand\" @(Ident | Number)+"`
}

// BeginStmt starts dragging the card at Index.
type BeginStmt struct {
	Pos   lexer.Position
	Index int `parser:"\"begin\" @Number"`
}

// HoverStmt is one hover event over the card at Index, whose rectangle spans
// Top to Bottom, with the drag source at Y.
type HoverStmt struct {
	Pos    lexer.Position
	Index  int     `parser:"\"hover\" @Number"`
	Top    float64 `parser:"@Number"`
	Bottom float64 `parser:"@Number"`
	Y      float64 `parser:"@Number"`
}

type EndStmt struct {
	Pos lexer.Position
	Kw  string `parser:"@\"end\""`
}

type ToggleStmt struct {
	Pos   lexer.Position
	Index int `parser:"\"toggle\" @Number"`
}

// StatusStmt cycles the hand status of the card at Index once, or until it
// reads Name when one is given.
type StatusStmt struct {
	Pos   lexer.Position
	Index int    `parser:"\"status\" @Number"`
	Name  string `parser:"@Ident?"`
}

func (HandStmt) stmt()   {}
func (BeginStmt) stmt()  {}
func (HoverStmt) stmt()  {}
func (EndStmt) stmt()    {}
func (ToggleStmt) stmt() {}
func (StatusStmt) stmt() {}

type Parser struct {
	parser *participle.Parser[Script]
}

func NewParser() *Parser {
	parser := participle.MustBuild[Script](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "comment", Pattern: `#[^\n]*`},
			{Name: "whitespace", Pattern: `[ \t\r]+`},
			{Name: "EOL", Pattern: `\n`},
			{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},
			{Name: "Ident", Pattern: `[a-zA-Z_][\w-]*`},
		})),
		participle.Elide("comment", "whitespace"),
		participle.Union[Stmt](
			HandStmt{},
			BeginStmt{},
			HoverStmt{},
			EndStmt{},
			ToggleStmt{},
			StatusStmt{},
		),
	)
	return &Parser{parser}
}

func (p *Parser) Parse(name, src string) (*Script, error) {
	return p.parser.ParseString(name, src)
}
