package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the severity profiles that would be simulated",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			profiles := cfg.Simulation.SeverityProfiles()
			out := cmd.OutOrStdout()

			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"profiles": profiles,
					"count":    len(profiles),
				})
			}

			for _, p := range profiles {
				fmt.Fprintf(out, "%s\n", p.Name)
				fmt.Fprintf(out, "  epsilon:       %.2f\n", p.Epsilon)
				fmt.Fprintf(out, "  stable arm:    mean %.2f, noise %.2f\n", p.StableMean, p.StableNoise)
				fmt.Fprintf(out, "  volatile arm:  switch every %d steps\n", p.SwitchEvery)
				for i, s := range p.VolatileStates {
					fmt.Fprintf(out, "    state %d:     mean %.2f, noise %.2f\n", i, s.Mean, s.Noise)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("profiles", "", "YAML file listing severity profiles")

	return cmd
}
