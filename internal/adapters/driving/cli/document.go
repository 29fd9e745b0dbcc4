package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage uploaded documents",
	Long:  `Upload, list, view, download or delete documents.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add <owner-id> <file>",
	Short: "Upload a document for a user",
	Long: `Upload a file for a user under the given title.

The content is hashed; a file whose content is already stored is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list <owner-id>",
	Short: "List a user's documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get <doc-id>",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentContentCmd = &cobra.Command{
	Use:   "content <doc-id>",
	Short: "Write the stored file to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentRemoveCmd = &cobra.Command{
	Use:     "rm <doc-id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a document",
	Args:    cobra.ExactArgs(1),
	RunE:    runDocumentRemove,
}

var (
	documentTitle      string
	documentCategories []string
)

func init() {
	documentAddCmd.Flags().StringVarP(&documentTitle, "title", "t", "", "document title (default: file name without extension)")
	documentAddCmd.Flags().StringSliceVarP(&documentCategories, "category", "c", nil, "category label, repeatable")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentRemoveCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	ownerID, path := args[0], args[1]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	title := documentTitle
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	doc, err := s.Documents.Add(cmd.Context(), driving.AddDocumentRequest{
		OwnerID:    ownerID,
		Title:      title,
		Categories: documentCategories,
		FileName:   filepath.Base(path),
		Content:    f,
	})
	var dup *domain.DuplicateContentError
	if errors.As(err, &dup) {
		return fmt.Errorf("content already uploaded as %s (%q): %w", dup.Existing.ID, dup.Existing.Title, err)
	}
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}

	cmd.Printf("Added document %s: %s\n", doc.ID, doc.Title)
	return nil
}

func runDocumentList(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	ownerID := args[0]
	docs, err := s.Documents.ListByOwner(cmd.Context(), ownerID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents found for user: %s\n", ownerID)
		return nil
	}

	cmd.Printf("Documents for user %s:\n\n", ownerID)
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if len(docs[i].Categories) > 0 {
			cmd.Printf("    Categories: %s\n", strings.Join(docs[i].Categories, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	doc, err := s.Documents.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:      %s\n", doc.Title)
	cmd.Printf("  Owner:      %s\n", doc.OwnerID)
	cmd.Printf("  Author:     %s\n", doc.Author)
	cmd.Printf("  File:       %s\n", doc.FileName())
	if len(doc.Categories) > 0 {
		cmd.Printf("  Categories: %s\n", strings.Join(doc.Categories, ", "))
	}
	if !doc.UploadDate.IsZero() {
		cmd.Printf("  Uploaded:   %s\n", doc.UploadDate.Format("2006-01-02 15:04:05"))
	}

	if len(doc.Metadata) > 0 {
		cmd.Println("\n  Metadata:")
		for k, v := range doc.Metadata {
			cmd.Printf("    %s: %v\n", k, v)
		}
	}

	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	body, _, err := s.Documents.Open(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document content: %w", err)
	}
	defer body.Close()

	if _, err := io.Copy(cmd.OutOrStdout(), body); err != nil {
		return fmt.Errorf("failed to write document content: %w", err)
	}
	return nil
}

func runDocumentRemove(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	docID := args[0]
	if err := s.Documents.Delete(cmd.Context(), docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", docID)
	return nil
}
