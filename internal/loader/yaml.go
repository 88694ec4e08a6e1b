package loader

import (
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/turingtools/tapir/pkg/domain"
	"gopkg.in/yaml.v3"
)

// specDTO mirrors the YAML document shape before domain validation.
type specDTO struct {
	States  int       `mapstructure:"states"`
	Symbols []string  `mapstructure:"symbols"`
	Rules   []ruleDTO `mapstructure:"rules"`
	Cases   []string  `mapstructure:"cases"`
}

type ruleDTO struct {
	From  int    `mapstructure:"from"`
	Read  string `mapstructure:"read"`
	Write string `mapstructure:"write"`
	Move  string `mapstructure:"move"`
	To    int    `mapstructure:"to"`
}

// LoadYAML parses the YAML specification format:
//
//	states: 2
//	symbols: ["_", "1"]
//	rules:
//	  - {from: 0, read: "_", write: "1", move: q, to: 1}
//	  ...
//	cases: ["11", "111"]
//
// The move tokens and the -1 halt marker match the text format.
func LoadYAML(r io.Reader) (*Spec, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read specification: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &domain.SpecError{Reason: "invalid yaml: " + err.Error()}
	}

	var dto specDTO
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &dto,
		WeaklyTypedInput: true, // YAML scalars may arrive as ints or strings
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, &domain.SpecError{Reason: "invalid specification document: " + err.Error()}
	}

	if len(dto.Symbols) == 0 {
		return nil, &domain.SpecError{Reason: "'symbols' is required"}
	}
	alphabet, err := domain.NewAlphabet(dto.Symbols)
	if err != nil {
		return nil, err
	}

	if want := dto.States * len(dto.Symbols); len(dto.Rules) != want {
		return nil, &domain.SpecError{Reason: fmt.Sprintf("expected %d rules (states x symbols), got %d", want, len(dto.Rules))}
	}

	table := domain.NewTable(dto.States, alphabet)
	for i, rd := range dto.Rules {
		rule, err := ruleFromDTO(rd)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if err := table.Insert(rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	machine, err := domain.NewMachine(alphabet, table)
	if err != nil {
		return nil, err
	}
	return &Spec{Machine: machine, Cases: dto.Cases}, nil
}

func ruleFromDTO(rd ruleDTO) (domain.Rule, error) {
	read, err := parseSymbolToken(rd.Read, 0)
	if err != nil {
		return domain.Rule{}, err
	}
	write, err := parseSymbolToken(rd.Write, 0)
	if err != nil {
		return domain.Rule{}, err
	}
	move, err := domain.ParseMove(rd.Move)
	if err != nil {
		return domain.Rule{}, err
	}
	to, err := domain.ParseNext(rd.To)
	if err != nil {
		return domain.Rule{}, err
	}
	return domain.Rule{From: rd.From, Read: read, Write: write, Move: move, Next: to}, nil
}
