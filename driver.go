package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/avoronkov/conslist/list"
	"github.com/bassosimone/runtimex"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Values prepended when no arguments are given.
var defaultValues = []uint32{1, 2, 3}

// Driver prepends values to an empty list and prints the result.
type Driver struct {
	out    io.Writer
	logger SLogger
	Format string
}

func NewDriver(out io.Writer, logger SLogger) *Driver {
	return &Driver{
		out:    out,
		logger: logger,
		Format: FormatText,
	}
}

// ParseValues parses decimal uint32 values.
func ParseValues(args []string) ([]uint32, error) {
	res := make([]uint32, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("Cannot parse value %q: %w", arg, err)
		}
		res = append(res, uint32(v))
	}
	return res, nil
}

// Run prepends args (or 1, 2, 3 if there are none) in order and prints the list.
func (d *Driver) Run(args []string) error {
	if d.Format != FormatText && d.Format != FormatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, d.Format)
	}
	values := defaultValues
	if len(args) > 0 {
		var err error
		if values, err = ParseValues(args); err != nil {
			return err
		}
	}

	l := list.New()
	for i, v := range values {
		l = l.Prepend(v)
		d.logger.Debug("prepend", "value", v, "len", uint32(i+1))
	}
	runtimex.Assert(l.Len() == uint32(len(values)))

	var err error
	if d.Format == FormatYAML {
		err = d.printYAML(l)
	} else {
		err = d.printText(l)
	}
	if err != nil {
		return err
	}
	d.logger.Info("done", "len", l.Len(), "format", d.Format)
	return nil
}

func (d *Driver) printText(l *list.List) error {
	if _, err := fmt.Fprintln(d.out, l.Len()); err != nil {
		return fmt.Errorf("print length: %w", err)
	}
	if _, err := fmt.Fprintln(d.out, l); err != nil {
		return fmt.Errorf("print list: %w", err)
	}
	return nil
}

type report struct {
	Len    uint32     `yaml:"len"`
	Values *list.List `yaml:"values"`
}

func (d *Driver) printYAML(l *list.List) error {
	data := runtimex.PanicOnError1(yaml.Marshal(&report{Len: l.Len(), Values: l}))
	if _, err := d.out.Write(data); err != nil {
		return fmt.Errorf("print yaml: %w", err)
	}
	return nil
}
