package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/everforgeworks/galaxies-warfront/internal/game"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the unit capability table",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tNAME\tHULL\tSHIELD\tDAMAGE\tSPEED\tTIER\tRAPID FIRE")
		for _, k := range game.AllKinds {
			st := game.Stats(k)
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
				st.Key, st.Name, st.Hull, st.Shield, st.Damage, st.Speed, st.Tier, len(st.RapidFire))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
