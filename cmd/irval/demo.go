package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"irval/internal/engine"
	"irval/internal/engine/mem"
	"irval/internal/ir"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build representative constants and dump them",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		applyColorMode(cmd, cfg)
		return runDemo(cmd.OutOrStdout(), cfg.Output.ShowTypes)
	},
}

func runDemo(w io.Writer, showTypes bool) error {
	eng := mem.New()
	heading := color.New(color.FgYellow, color.Bold)

	show := func(label string, v ir.Value) {
		if showTypes {
			if t, err := v.Type(); err == nil {
				fmt.Fprintf(w, "  %-28s %-10s %s\n", label, t, v.Dump())
				return
			}
		}
		fmt.Fprintf(w, "  %-28s %s\n", label, v.Dump())
	}

	heading.Fprintln(w, "integers")
	three, err := ir.Int32.Const(eng, 3)
	if err != nil {
		return err
	}
	four, err := ir.Int32.Const(eng, 4)
	if err != nil {
		return err
	}
	sum, err := three.Add(four)
	if err != nil {
		return err
	}
	show("i32 3 + 4", sum)
	ones, err := ir.Int8.AllOnes(eng)
	if err != nil {
		return err
	}
	show("i8 all-ones", ones)
	maxI8, err := ir.Int8.Const(eng, 127)
	if err != nil {
		return err
	}
	one, err := ir.Int8.Const(eng, 1)
	if err != nil {
		return err
	}
	if _, err := maxI8.AddNSW(one); err != nil {
		fmt.Fprintf(w, "  %-28s %v\n", "i8 127 nsw+ 1", err)
	}

	heading.Fprintln(w, "floats")
	half, err := ir.Double.Const(eng, 0.5)
	if err != nil {
		return err
	}
	quarter, err := half.Mul(half)
	if err != nil {
		return err
	}
	show("double 0.5 * 0.5", quarter)

	heading.Fprintln(w, "aggregates")
	arr, err := ir.GenerateArray(eng, mustType(ir.Int32.Type(eng)), 3, func(i int) ir.Value {
		v, _ := ir.Int32.Const(eng, int64(i))
		return v
	})
	if err != nil {
		return err
	}
	show("[3 x i32] 0..2", arr)
	str, err := ir.NewString(eng, "hi", true)
	if err != nil {
		return err
	}
	show(`c"hi\00"`, str)

	heading.Fprintln(w, "globals")
	g, err := ir.NewGlobalVariable(eng, mustType(ir.Int32.Type(eng)), "counter")
	if err != nil {
		return err
	}
	if err := g.SetInitializer(sum); err != nil {
		return err
	}
	g.SetAlignment(4)
	g.SetLinkage(engine.LinkageInternal)
	show("@counter", g)
	return nil
}

func mustType(t ir.Type, err error) ir.Type {
	if err != nil {
		panic(err)
	}
	return t
}
