package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/baasify/internal/vault"
	"github.com/pdiddy/baasify/pkg/types"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Inspect and update the asset vault",
	Long: `Vault operates on the caller-held asset collection: listing assets,
showing one in full, and managing the validation tasks attached to them.
Assets enter the vault through 'solve --save' and are never deleted.`,
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets in the vault",
	RunE:  runVaultList,
}

var vaultShowCmd = &cobra.Command{
	Use:   "show <asset-id>",
	Short: "Print one asset as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultShow,
}

var vaultAddTaskCmd = &cobra.Command{
	Use:   "add-task <asset-id>",
	Short: "Create a validation task on an asset",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultAddTask,
}

var vaultUpdateTaskCmd = &cobra.Command{
	Use:   "update-task <asset-id> <task-id>",
	Short: "Update fields of a validation task",
	Args:  cobra.ExactArgs(2),
	RunE:  runVaultUpdateTask,
}

func init() {
	vaultAddTaskCmd.Flags().String("title", "", "task title (required)")
	vaultAddTaskCmd.Flags().String("assignee", "", "person responsible")
	vaultAddTaskCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	vaultAddTaskCmd.Flags().String("priority", "", "task priority: low, medium, high")

	vaultUpdateTaskCmd.Flags().String("title", "", "new task title")
	vaultUpdateTaskCmd.Flags().String("assignee", "", "new assignee")
	vaultUpdateTaskCmd.Flags().String("due", "", "new due date (YYYY-MM-DD)")
	vaultUpdateTaskCmd.Flags().String("status", "", "new status: todo, in-progress, done")
	vaultUpdateTaskCmd.Flags().String("priority", "", "new priority: low, medium, high")

	vaultCmd.AddCommand(vaultListCmd, vaultShowCmd, vaultAddTaskCmd, vaultUpdateTaskCmd)
	rootCmd.AddCommand(vaultCmd)
}

func runVaultList(cmd *cobra.Command, args []string) error {
	v, _, err := openVault(cmd)
	if err != nil {
		return err
	}
	assets := v.List()
	if len(assets) == 0 {
		fmt.Fprintln(os.Stderr, "vault is empty")
		return nil
	}
	for _, a := range assets {
		spp := ""
		if a.Passport != nil {
			spp = "  " + a.Passport.ID
		}
		fmt.Printf("%-12s %-35s %-14s composite=%d  %s%s\n",
			a.ID, a.Name, a.Category, a.TIRScores.Composite, a.TokenStatus, spp)
	}
	return nil
}

func runVaultShow(cmd *cobra.Command, args []string) error {
	v, _, err := openVault(cmd)
	if err != nil {
		return err
	}
	asset, err := v.Get(args[0])
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(asset)
	if err != nil {
		return fmt.Errorf("encoding asset: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runVaultAddTask(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		return fmt.Errorf("provide a task title with --title")
	}
	assignee, _ := cmd.Flags().GetString("assignee")
	due, _ := cmd.Flags().GetString("due")
	priority, _ := cmd.Flags().GetString("priority")

	v, path, err := openVault(cmd)
	if err != nil {
		return err
	}
	task, err := v.AddTask(args[0], vault.NewTask{
		Title:    title,
		Assignee: assignee,
		DueDate:  due,
		Priority: types.TaskPriority(priority),
	})
	if err != nil {
		return err
	}
	if err := v.SaveFile(path); err != nil {
		return err
	}
	fmt.Printf("created %s on %s\n", task.ID, args[0])
	return nil
}

func runVaultUpdateTask(cmd *cobra.Command, args []string) error {
	var patch vault.TaskPatch
	if f := cmd.Flags(); f.Changed("title") {
		s, _ := f.GetString("title")
		patch.Title = &s
	}
	if f := cmd.Flags(); f.Changed("assignee") {
		s, _ := f.GetString("assignee")
		patch.Assignee = &s
	}
	if f := cmd.Flags(); f.Changed("due") {
		s, _ := f.GetString("due")
		patch.DueDate = &s
	}
	if f := cmd.Flags(); f.Changed("status") {
		s, _ := f.GetString("status")
		status := types.TaskStatus(s)
		patch.Status = &status
	}
	if f := cmd.Flags(); f.Changed("priority") {
		s, _ := f.GetString("priority")
		priority := types.TaskPriority(s)
		patch.Priority = &priority
	}

	v, path, err := openVault(cmd)
	if err != nil {
		return err
	}
	task, err := v.UpdateTask(args[0], args[1], patch)
	if err != nil {
		return err
	}
	if err := v.SaveFile(path); err != nil {
		return err
	}
	fmt.Printf("updated %s: status=%s priority=%s\n", task.ID, task.Status, task.Priority)
	return nil
}
