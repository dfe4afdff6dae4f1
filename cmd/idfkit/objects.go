/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/idfkit/pkg/editor"
	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/record"
)

func newListCmd(params *idfkitParams) *cobra.Command {
	return &cobra.Command{
		Use:   "list idf-file [class]",
		Short: "list data file objects",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			classes := s.store.AllClasses()
			if len(args) > 1 {
				cls := s.reg.Class(args[1])
				if cls == nil {
					return idd.ErrUnknownClass(args[1])
				}
				classes = []string{cls.Key()}
			}
			out := cmd.OutOrStdout()
			for _, c := range classes {
				for _, obj := range s.editor.Objects(c) {
					fmt.Fprintln(out, obj)
				}
			}
			return nil
		},
	}
}

func newShowCmd(params *idfkitParams) *cobra.Command {
	return &cobra.Command{
		Use:   "show idf-file class name",
		Short: "print object fields",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			obj, err := named(s, args[1], args[2])
			if err != nil {
				return err
			}
			printObject(cmd, obj)
			return nil
		},
	}
}

func newAddCmd(params *idfkitParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add idf-file class [field=value ...]",
		Short: "add new object with declared defaults and specified fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			cls := s.reg.Class(args[1])
			if cls == nil {
				return idd.ErrUnknownClass(args[1])
			}
			fields, err := parseAssignments(cls, args[2:])
			if err != nil {
				return err
			}
			obj, err := s.editor.AddObject(cls.Key(), fields)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), green("added"), obj)
			return s.save(cmd, params.Out)
		},
	}
	addOutFlag(cmd, params)
	return cmd
}

func newRemoveCmd(params *idfkitParams) *cobra.Command {
	var extensibles bool
	cmd := &cobra.Command{
		Use:   "remove idf-file class name",
		Short: "remove object, references to it are kept",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			if extensibles {
				obj, err := s.editor.RemoveExtensibles(args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), green("extensible fields removed from"), obj)
			} else {
				refs, err := s.editor.ReferencesTo(args[1], args[2])
				if err != nil {
					return err
				}
				if err := s.editor.RemoveObject(args[1], args[2]); err != nil {
					return err
				}
				for _, h := range refs {
					fmt.Fprintln(cmd.ErrOrStderr(), red("dangling"), h)
				}
			}
			return s.save(cmd, params.Out)
		},
	}
	cmd.Flags().BoolVar(&extensibles, "extensibles", false, "remove only extensible fields of object")
	addOutFlag(cmd, params)
	return cmd
}

func named(s *session, class, name string) (*record.Facade, error) {
	cls := s.reg.Class(class)
	if cls == nil {
		return nil, idd.ErrUnknownClass(class)
	}
	obj, ok := s.editor.GetNamed(cls.Key(), name)
	if !ok {
		return nil, idd.ErrObjectNotFound(cls.Name(), name)
	}
	return obj, nil
}

func printObject(cmd *cobra.Command, obj *record.Facade) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, obj)
	for p, f := range obj.Fields() {
		if p == 0 || f == nil {
			continue
		}
		label := f.Name()
		if u := f.Units(); u != "" {
			label += " {" + u + "}"
		}
		fmt.Fprintf(out, "  %-3d %s = %s\n", p, label, obj.At(p))
	}
}

// Parses «field=value» arguments. Values are normalized by field data kind.
// Two arguments naming the same field fail with editor.ErrFieldAssignedTwice
func parseAssignments(cls *idd.Class, args []string) (map[string]fieldconv.Value, error) {
	fields := make(map[string]fieldconv.Value, len(args))
	assigned := make(map[int]string, len(args))
	for _, a := range args {
		name, value, ok := strings.Cut(a, fieldAssignSep)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, idd.EnrichError(errInvalidAssignment, "«%s»", a)
		}
		f := cls.Field(name)
		if f == nil {
			return nil, idd.ErrUnknownField(cls.Name(), name)
		}
		if prev, dup := assigned[f.Position()]; dup {
			return nil, idd.EnrichError(editor.ErrFieldAssignedTwice, "«%s» and «%s»", prev, name)
		}
		assigned[f.Position()] = name
		fields[name] = fieldconv.TryParseNumber(value, f.DataKind(), f.Tag())
	}
	return fields, nil
}
