package console

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/models"
)

// Prompter reads validated values one line at a time. Invalid lines are
// answered with a retry message and read again, with no attempt limit.
// The only error it returns is io.EOF once input is exhausted.
type Prompter struct {
	in  *bufio.Reader
	out *Output
}

func NewPrompter(in io.Reader, out *Output) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line reads the next line without its terminator.
func (p *Prompter) Line() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prompts until the line is an integer >= min.
func (p *Prompter) Int(prompt, field string, min int) (int, error) {
	p.out.Printf("%s", prompt)
	for {
		raw, err := p.Line()
		if err != nil {
			return 0, err
		}
		v, err := parseInt(field, raw, min)
		if err == nil {
			return v, nil
		}
		p.out.Printf("Invalid input. Please enter an integer greater than or equal to %d: ", min)
	}
}

// Text prompts until the line holds something other than whitespace.
// The returned value is trimmed.
func (p *Prompter) Text(prompt, field string) (string, error) {
	p.out.Printf("%s", prompt)
	for {
		raw, err := p.Line()
		if err != nil {
			return "", err
		}
		v, err := parseText(field, raw)
		if err == nil {
			return v, nil
		}
		p.out.Printf("Invalid input. Please enter a valid string: ")
	}
}

// Float prompts until the line is a finite number >= min.
func (p *Prompter) Float(prompt, field string, min float64) (float64, error) {
	p.out.Printf("%s", prompt)
	for {
		raw, err := p.Line()
		if err != nil {
			return 0, err
		}
		v, err := parseFloat(field, raw, min)
		if err == nil {
			return v, nil
		}
		p.out.Printf("Invalid input. Please enter a number greater than or equal to %s: ", models.FormatNumber(min))
	}
}
