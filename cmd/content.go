package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/contentgen"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the approved words, counting items and color items",
}

var contentListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List approved content (words, counting, colors)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := content.Kinds
		if len(args) == 1 {
			kind, err := content.ParseKind(args[0])
			if err != nil {
				return err
			}
			kinds = []content.Kind{kind}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		cat := newServices(st).catalog

		ctx := cmd.Context()
		for i, kind := range kinds {
			items, err := cat.All(ctx, kind)
			if err != nil {
				return fmt.Errorf("list %s: %w", kind, err)
			}
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s (%d)\n", kind.Label(), len(items))
			fmt.Println(strings.Repeat("─", 40))
			if len(items) == 0 {
				fmt.Println("  (none)")
				continue
			}
			for _, item := range items {
				if c, ok := item.(content.ColorItem); ok {
					fmt.Printf("  %-20s %s\n", c.Name, c.Color)
					continue
				}
				fmt.Printf("  %s\n", item.Key())
			}
		}
		return nil
	},
}

var contentAddCmd = &cobra.Command{
	Use:   "add <kind> [name]",
	Short: "Generate a new item, preview it and approve it",
	Long: "Generate a candidate with the configured provider. Without a name the " +
		"provider suggests one. The item is saved only after you approve it.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := content.ParseKind(args[0])
		if err != nil {
			return err
		}
		color, _ := cmd.Flags().GetString("color")
		yes, _ := cmd.Flags().GetBool("yes")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		svc := newServices(st)

		ctx := cmd.Context()
		fmt.Fprintf(os.Stderr, "Generating %s...\n", strings.ToLower(kind.Label()))
		var c *contentgen.Candidate
		if len(args) == 2 {
			c, err = svc.generator.For(ctx, kind, args[1], color)
		} else {
			c, err = svc.generator.Random(ctx, kind)
		}
		if err != nil {
			return errors.New(content.Message(err))
		}
		return approve(cmd, svc, c, yes)
	},
}

// approve shows a generated item and saves it once confirmed.
func approve(cmd *cobra.Command, svc services, c *contentgen.Candidate, yes bool) error {
	item := c.Item()
	fmt.Printf("Candidate: %s\n", c)
	if c.Model != "" {
		fmt.Printf("Picture:   %s (%s)\n", pictureSize(c.Image), c.Model)
	}
	if !yes && !confirm(cmd.InOrStdin(), "Approve this item? [y/N] ") {
		fmt.Println("Rejected.")
		return nil
	}
	if err := svc.catalog.Put(cmd.Context(), item); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Println("Approved.")
	return nil
}

func pictureSize(uri string) string {
	mime, data, err := content.DecodeDataURI(uri)
	if err != nil {
		return "unreadable"
	}
	return fmt.Sprintf("%s, %d bytes", mime, len(data))
}

// confirm reads a yes/no answer. Anything but y or yes is no.
func confirm(in io.Reader, prompt string) bool {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var contentDeleteCmd = &cobra.Command{
	Use:   "delete <kind> <name>",
	Short: "Delete an approved item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := content.ParseKind(args[0])
		if err != nil {
			return err
		}
		key := content.Normalize(args[1])
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), fmt.Sprintf("Delete %s %q? [y/N] ", kind, key)) {
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := newServices(st).catalog.Delete(cmd.Context(), kind, key); err != nil {
			return fmt.Errorf("delete %s %q: %w", kind, key, err)
		}
		fmt.Printf("Deleted %s %q.\n", kind, key)
		return nil
	},
}

// bundle is the export file format.
type bundle struct {
	Words    []content.WordItem     `json:"words,omitempty"`
	Counting []content.CountingItem `json:"counting,omitempty"`
	Colors   []content.ColorItem    `json:"colors,omitempty"`
}

var contentExportCmd = &cobra.Command{
	Use:   "export [<kind> <name> <file>]",
	Short: "Write all approved content as JSON, or one picture to a file",
	Long: "Without arguments every approved item is written to stdout as JSON that " +
		"import reads back. With a kind, name and file the item's picture is decoded " +
		"and written to the file.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return errors.New("want no arguments or <kind> <name> <file>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		cat := newServices(st).catalog

		ctx := cmd.Context()
		if len(args) == 3 {
			kind, err := content.ParseKind(args[0])
			if err != nil {
				return err
			}
			key := content.Normalize(args[1])
			item, err := cat.Get(ctx, kind, key)
			if err != nil {
				return errors.New(content.Message(err))
			}
			if item == nil {
				return fmt.Errorf("no %s named %q", kind, key)
			}
			mime, data, err := content.DecodeDataURI(item.Picture())
			if err != nil {
				return fmt.Errorf("decode picture: %w", err)
			}
			if err := os.WriteFile(args[2], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[2], err)
			}
			fmt.Printf("Wrote %s (%s, %d bytes).\n", args[2], mime, len(data))
			return nil
		}

		var b bundle
		if b.Words, err = cat.Words(ctx); err != nil {
			return err
		}
		if b.Counting, err = cat.CountingItems(ctx); err != nil {
			return err
		}
		if b.Colors, err = cat.ColorItems(ctx); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	},
}

var contentImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Approve every item in a file written by export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var b bundle
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		cat := newServices(st).catalog

		var items []content.Item
		for _, w := range b.Words {
			items = append(items, w)
		}
		for _, c := range b.Counting {
			items = append(items, c)
		}
		for _, c := range b.Colors {
			items = append(items, c)
		}

		imported := 0
		for _, item := range items {
			if err := cat.Put(cmd.Context(), item); err != nil {
				fmt.Fprintf(os.Stderr, "skip %s %q: %s\n", item.Kind(), item.Key(), content.Message(err))
				continue
			}
			imported++
		}
		fmt.Printf("Imported %d of %d items.\n", imported, len(items))
		return nil
	},
}

func init() {
	contentAddCmd.Flags().String("color", "", "Color for a named color item")
	contentAddCmd.Flags().BoolP("yes", "y", false, "Approve without asking")
	contentDeleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking")

	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentAddCmd)
	contentCmd.AddCommand(contentDeleteCmd)
	contentCmd.AddCommand(contentExportCmd)
	contentCmd.AddCommand(contentImportCmd)
}
