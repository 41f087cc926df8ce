package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mechanic_payroll/dao"
	"mechanic_payroll/services"
)

func newInitAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-admin",
		Short: "Create the admin account (run once)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := rt.cfg.RequireAdminPassword(); err != nil {
				return err
			}

			admins := services.NewAdminService(dao.NewAdminDAO(rt.db), rt.cfg.AdminUsername, rt.cfg.AdminPassword, rt.logger)
			err = admins.Init(cmd.Context())
			if errors.Is(err, services.ErrAdminExists) {
				fmt.Fprintln(cmd.OutOrStdout(), "Admin already exists")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Admin created")
			return nil
		},
	}
}
