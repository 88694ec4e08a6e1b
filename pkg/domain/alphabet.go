package domain

// Symbol is a single tape cell value. Symbols are compared by value; the
// engine never synthesizes a symbol outside the declared alphabet except
// blanks used for tape extension.
type Symbol rune

func (s Symbol) String() string { return string(rune(s)) }

// Alphabet is the fixed, ordered symbol set of a machine.
// The symbol at index 0 is the blank symbol: it fills extended tape cells and
// marks rejection when found under the head at halt.
type Alphabet struct {
	symbols []Symbol
	index   map[Symbol]int
}

// NewAlphabet builds an alphabet from wire tokens in declared order.
// Each token must be exactly one rune and tokens must be unique.
func NewAlphabet(tokens []string) (*Alphabet, error) {
	if len(tokens) == 0 {
		return nil, &SpecError{Reason: "alphabet is empty"}
	}

	a := &Alphabet{
		symbols: make([]Symbol, 0, len(tokens)),
		index:   make(map[Symbol]int, len(tokens)),
	}
	for i, tok := range tokens {
		runes := []rune(tok)
		if len(runes) != 1 {
			return nil, &SpecError{Reason: "symbol token must be a single character, got " + quote(tok)}
		}
		sym := Symbol(runes[0])
		if _, dup := a.index[sym]; dup {
			return nil, &SpecError{Reason: "duplicate symbol " + quote(tok)}
		}
		a.symbols = append(a.symbols, sym)
		a.index[sym] = i
	}
	return a, nil
}

// Blank returns the blank symbol (index 0).
func (a *Alphabet) Blank() Symbol { return a.symbols[0] }

// Len returns the number of declared symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the symbols in declared order. The returned slice is a copy.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// At returns the symbol at the given declared index.
func (a *Alphabet) At(i int) Symbol { return a.symbols[i] }

// Index returns the declared position of sym, or an UnknownSymbolError if the
// symbol is not part of this alphabet.
func (a *Alphabet) Index(sym Symbol) (int, error) {
	i, ok := a.index[sym]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: sym}
	}
	return i, nil
}

// Contains reports whether sym is declared in this alphabet.
func (a *Alphabet) Contains(sym Symbol) bool {
	_, ok := a.index[sym]
	return ok
}

func quote(s string) string { return "'" + s + "'" }
