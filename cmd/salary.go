package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mechanic_payroll/dao"
	"mechanic_payroll/services"
)

func newSalaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "salary <member_id>",
		Short: "Print a member's earnings total and salary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid member id %q", args[0])
			}

			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			salary := services.NewSalaryService(dao.NewMemberDAO(rt.db), dao.NewEarningDAO(rt.db))
			report, err := salary.Calculate(cmd.Context(), uint(id))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "member:       %s\nrole:         %s\ntotal_earned: %g\nsalary:       %g\n",
				report.Member, report.Role, report.TotalEarned, report.Salary)
			return nil
		},
	}
}
