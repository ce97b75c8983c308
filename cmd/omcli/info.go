package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fchapoton/oriented-matroids/matroid"
	"github.com/fchapoton/oriented-matroids/systemfile"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a system file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := systemfile.Load(args[0])
			if err != nil {
				return err
			}
			sys, err := doc.System()
			if err != nil {
				return err
			}
			return printInfo(sys)
		},
	}
}

func printInfo(sys matroid.System[any]) error {
	fmt.Printf("kind:       %s\n", sys.Kind())
	fmt.Printf("ground set: %s\n", labelList(sys.GroundSet().Labels()))
	fmt.Printf("elements:   %d\n", len(sys.Elements()))
	fmt.Printf("rank:       %d\n", sys.Rank())

	if err := sys.Validate(); err != nil {
		fmt.Printf("valid:      false (%v)\n", err)
		return nil
	}
	fmt.Printf("valid:      true\n")

	topes, err := matroid.Topes(sys)
	if errors.Is(err, matroid.ErrNoFaceLattice) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("topes:      %d\n", len(topes))

	loops, err := matroid.Loops(sys)
	if err != nil {
		return err
	}
	fmt.Printf("loops:      %s\n", labelList(loops))

	simple, err := matroid.IsSimple(sys)
	if err != nil {
		return err
	}
	fmt.Printf("simple:     %t\n", simple)

	if cv, ok := sys.(*matroid.CovectorSystem[any]); ok {
		acyclic, err := cv.IsAcyclic()
		if err != nil {
			return err
		}
		fmt.Printf("acyclic:    %t\n", acyclic)
	}
	return nil
}

func labelList(labels []any) string {
	if len(labels) == 0 {
		return "(none)"
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprint(l)
	}
	return strings.Join(parts, ", ")
}
