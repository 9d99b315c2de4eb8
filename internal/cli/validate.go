package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transitlab/netlint/pkg/network"
	"github.com/transitlab/netlint/pkg/validate"
)

// validateCommand creates the validate command with network and demand
// subcommands.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check network and demand files for structural problems",
	}

	cmd.AddCommand(c.validateNetworkCommand())
	cmd.AddCommand(c.validateDemandCommand())

	return cmd
}

// validateNetworkCommand creates the "validate network" subcommand.
func (c *CLI) validateNetworkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "network <file>",
		Short: "Validate a JSON network file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)

			net, err := network.ImportFile(args[0])
			if err != nil {
				return err
			}
			res := validate.Network(net)
			prog.done(fmt.Sprintf("Checked %d nodes, %d sections", net.NodeCount(), net.SectionCount()))

			printIssues(res.Issues)

			errs, warns := len(res.Errors()), len(res.Warnings())
			switch {
			case errs > 0:
				printError("%d errors, %d warnings", errs, warns)
				return fmt.Errorf("network is invalid")
			case warns > 0 && strict:
				printWarning("%d warnings (strict mode)", warns)
				return fmt.Errorf("network has warnings")
			case warns > 0:
				printWarning("Valid with %d warnings", warns)
			default:
				printSuccess("Network is valid")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")
	return cmd
}

// validateDemandCommand creates the "validate demand" subcommand.
func (c *CLI) validateDemandCommand() *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "demand <file>",
		Short: "Validate a CSV travel demand file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("radius") {
				if cfg, err := c.Config(); err == nil && cfg.Radius > 0 {
					radius = cfg.Radius
				}
			}

			prog := newProgress(c.Logger)
			rep, err := validate.DemandFile(args[0], validate.DemandOptions{Radius: radius})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Checked %d users", rep.Total))

			printIssues(rep.Issues)

			printKeyValue("Users", fmt.Sprintf("%d", rep.Total))
			printKeyValue("Invalid", fmt.Sprintf("%d", rep.Invalid))
			printKeyValue("Warned", fmt.Sprintf("%d", rep.Warned))
			if rep.FirstDeparture != "" {
				printKeyValue("Departures", rep.FirstDeparture+" - "+rep.LastDeparture)
			}
			printKeyValue("Valid", fmt.Sprintf("%.1f%%", rep.ValidationRate()))

			if !rep.Valid() {
				return fmt.Errorf("demand file is invalid")
			}
			printSuccess("Demand file is valid")
			return nil
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 0, "minimum trip distance; shorter trips produce warnings")
	return cmd
}

// printIssues lists findings with severity styling.
func printIssues(issues []validate.Issue) {
	for _, issue := range issues {
		switch issue.Severity {
		case validate.SeverityError:
			printError("%s", issue.String())
		default:
			printWarning("%s", issue.String())
		}
	}
}
