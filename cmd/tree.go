package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/iotree"
	"github.com/gnames/gnkin/pkg/locale"
	"github.com/gnames/gnkin/pkg/surname"
	"github.com/gnames/gnkin/pkg/tree"
	"github.com/spf13/cobra"
)

func withTrees(ctx context.Context, fn func(tree.Manager) error) error {
	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	if err = fn(iotree.New(op)); err != nil {
		gn.PrintErrorMessage(err)
	}
	return err
}

func getTreeCmd() *cobra.Command {
	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Manage family trees",
	}
	treeCmd.AddCommand(getTreeAddCmd(), getTreeListCmd(), getTreeSetCmd())
	return treeCmd
}

func getTreeAddCmd() *cobra.Command {
	var title, tradition, language string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a family tree",
		Long: fmt.Sprintf(`Add creates a family tree. Without --tradition the tree gets the
surname tradition usual for --language.

Traditions: %v

Examples:
  gnkin tree add royals --title "Royal Family"
  gnkin tree add saga --language is`, surname.Keys()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tradition == "" {
				tradition = locale.DefaultTradition(language)
			}
			if _, err := surname.New(tradition); err != nil {
				gn.Warn("%s", err)
				return err
			}
			ctx := cmd.Context()
			return withTrees(ctx, func(trees tree.Manager) error {
				t, err := trees.CreateWithSettings(ctx, args[0], title,
					map[string]string{
						tree.SettingSurnameTradition: tradition,
						tree.SettingLanguage:         language,
					})
				if err != nil {
					return err
				}
				gn.Info("Created tree <em>%s</em> (%s tradition), UUID %s",
					t.Name, tradition, t.UUID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "title of the tree")
	cmd.Flags().StringVarP(&tradition, "tradition", "s", "", "surname tradition")
	cmd.Flags().StringVarP(&language, "language", "l", locale.Default, "language of the tree")
	return cmd
}

func getTreeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List family trees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withTrees(ctx, func(trees tree.Manager) error {
				res, err := trees.All(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTITLE\tTRADITION")
				for _, t := range res {
					trad, err := trees.Tradition(ctx, t.ID)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Title, trad)
				}
				return w.Flush()
			})
		},
	}
}

func getTreeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set TREE SETTING [VALUE]",
		Short: "Change or remove a setting of a family tree",
		Long: `Set stores a tree setting. Without VALUE the setting is removed.

Examples:
  gnkin tree set royals SURNAME_TRADITION patrilineal
  gnkin tree set royals LANGUAGE`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var value string
			if len(args) == 3 {
				value = args[2]
			}
			return withTrees(ctx, func(trees tree.Manager) error {
				t, err := trees.FindByName(ctx, args[0])
				if err != nil {
					return err
				}
				if t == nil {
					return fmt.Errorf("%w: %s", tree.ErrNotFound, args[0])
				}
				return trees.SetSetting(ctx, t.ID, args[1], value)
			})
		},
	}
}
