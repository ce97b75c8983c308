package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fchapoton/oriented-matroids/matroid"
	"github.com/fchapoton/oriented-matroids/signedset"
	"github.com/fchapoton/oriented-matroids/systemfile"
)

func facesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faces <file>",
		Short: "Print the face order of a covector system",
		Long: `Faces builds the big face poset of a covector system and prints its
cover relations, followed by a face-lattice summary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := systemfile.Load(args[0])
			if err != nil {
				return err
			}
			sys, err := doc.System()
			if err != nil {
				return err
			}
			cv, ok := sys.(*matroid.CovectorSystem[any])
			if !ok {
				return fmt.Errorf("%w: %s", matroid.ErrNoFaceLattice, sys.Kind())
			}
			return printFaces(cv)
		},
	}
}

func printFaces(cv *matroid.CovectorSystem[any]) error {
	p, err := cv.FacePoset()
	if err != nil {
		return err
	}
	elements := cv.Elements()
	fmt.Printf("face poset: %d covectors, height %d\n", p.Len(), p.Height())
	for _, rel := range p.CoverRelations() {
		fmt.Printf("  %s < %s\n", signWord(elements[rel[0]]), signWord(elements[rel[1]]))
	}

	fl, err := cv.FaceLattice()
	if err != nil {
		return err
	}
	bottom, _ := fl.Lattice.Bottom()
	fmt.Printf("face lattice: %d elements (top added), height %d, bottom %s\n",
		fl.Lattice.Len(), fl.Lattice.Height(), signWord(fl.Elements[bottom]))

	topes, err := cv.Topes()
	if err != nil {
		return err
	}
	words := make([]string, len(topes))
	for i, t := range topes {
		words[i] = signWord(t)
	}
	fmt.Printf("topes: %s\n", strings.Join(words, " "))
	return nil
}

func signWord(x *signedset.SignedSubset[any]) string {
	if x == nil {
		return "1̂"
	}
	var sb strings.Builder
	for _, s := range x.Signs() {
		sb.WriteString(s.String())
	}
	return sb.String()
}
