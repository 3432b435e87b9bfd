package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"shaimind/src/config"
	"shaimind/src/personality"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List available personas",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := viper.GetString("personas.dir")
		if dir == "" {
			dir = config.GetPersonasDir()
		}

		catalog, err := personality.LoadCatalog(dir, zap.NewNop())
		if err != nil {
			return err
		}

		for _, key := range catalog.Keys() {
			p, err := catalog.Get(key)
			if err != nil {
				continue
			}
			fmt.Printf("%-24s %s (%s, intensity %d)\n", key, p.Name, p.EmotionalState, p.EmotionalIntensity)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
}
