package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khoahotran/planmoni-site/internal/application/crudflow"
)

type record interface {
	GetID() string
}

// entity describes one admin screen: its form, how it reaches the use
// cases, and how it prints in a listing.
type entity[R record] struct {
	use     string
	name    string
	fields  []crudflow.Field
	backend func(a *app) crudflow.Backend[R]
	toForm  func(R) crudflow.Form
	list    func(ctx context.Context, a *app, query string) []R
	header  []string
	row     func(R) []string
}

func (e entity[R]) screen(a *app) *crudflow.Screen[R] {
	return crudflow.NewScreen[R](e.name, e.fields, e.backend(a), e.toForm, a.log)
}

func entityCommand[R record](a *app, e entity[R]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   e.use,
		Short: fmt.Sprintf("List, create, edit, view and delete %ss", e.name),
	}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + e.name + "s",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join(append([]string{"ID"}, e.header...), "\t"))
			for _, r := range e.list(cmd.Context(), a, query) {
				fmt.Fprintln(w, strings.Join(append([]string{r.GetID()}, e.row(r)...), "\t"))
			}
			return w.Flush()
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "free-text filter")

	view := &cobra.Command{
		Use:   "view <id>",
		Short: "Show one " + e.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := e.screen(a)
			if err := s.OpenView(cmd.Context(), args[0]); err != nil {
				return err
			}
			defer s.Close()
			form := e.toForm(*s.Viewing())
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "id\t%s\n", args[0])
			for _, f := range s.Fields() {
				fmt.Fprintf(w, "%s\t%s\n", f.Name, form[f.Name])
			}
			return w.Flush()
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a " + e.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := e.screen(a).RunCreate(cmd.Context(), terminalPrompter{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", e.name, (*r).GetID())
			return nil
		},
	}

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a " + e.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.screen(a).RunEdit(cmd.Context(), terminalPrompter{}, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", e.name, args[0])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + e.name + " after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := e.screen(a).RunDelete(cmd.Context(), terminalPrompter{}, args[0])
			if err != nil {
				return err
			}
			if deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", e.name, args[0])
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
			}
			return nil
		},
	}

	cmd.AddCommand(list, view, create, edit, del)
	return cmd
}
