package cli

import (
	"fmt"

	"github.com/mindcheck/screener/internal/cli/formatter"
	"github.com/mindcheck/screener/internal/clinic"
	"github.com/spf13/cobra"
)

func newClinicsCmd(app *App) *cobra.Command {
	var (
		region   regionValue
		provider providerValue
		keyword  string
	)

	cmd := &cobra.Command{
		Use:   "clinics",
		Short: "List psychiatric clinics and map search links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := app.cfg().Clinic.DefaultRegion
			if region.set {
				r = region.region
			}

			providers := clinic.Providers
			if provider.provider != "" {
				providers = []clinic.Provider{provider.provider}
			}
			links := make([]formatter.SearchLink, 0, len(providers))
			for _, p := range providers {
				u, err := clinic.SearchURL(p, keyword, r)
				if err != nil {
					return err
				}
				links = append(links, formatter.SearchLink{Provider: p, URL: u})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClinics(r, clinic.ByRegion(r), links))
			return nil
		},
	}

	cmd.Flags().Var(&region, "region", "Only list clinics in this region (default from config, All for every region)")
	cmd.Flags().Var(&provider, "search-provider", "Only show the link for naver, kakao or google")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Map search keyword (default: psychiatry department)")

	return cmd
}
