package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

// newSectionsCmd deriva as seções offline, a partir de arquivos JSON.
func newSectionsCmd() *cobra.Command {
	var productsFile, categoriesFile string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Deriva as seções de produtos a partir de arquivos JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			var products []entity.Product
			if err := readJSON(productsFile, &products); err != nil {
				return err
			}

			var categories []entity.Category
			if categoriesFile != "" {
				if err := readJSON(categoriesFile, &categories); err != nil {
					return err
				}
			}

			names, images := usecase.CategoryMaps(categories)
			out := usecase.GetSectionsOutput{
				Sections:       usecase.DeriveSections(products, names),
				CategoryImages: images,
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&productsFile, "products", "", "products JSON file (array)")
	cmd.Flags().StringVar(&categoriesFile, "categories", "", "categories JSON file (array)")
	cmd.MarkFlagRequired("products")

	return cmd
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON inválido em %s: %w", path, err)
	}
	return nil
}
