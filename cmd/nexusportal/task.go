package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nexusportal/internal/portal"
)

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskCreateCmd())
	cmd.AddCommand(taskDeleteCmd())
	return cmd
}

func taskListCmd() *cobra.Command {
	var priority string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			tasks := s.ctrl.Tasks()
			printed := 0
			for _, t := range tasks {
				if priority != "" && string(t.Priority) != priority {
					continue
				}
				fmt.Fprintf(os.Stdout, "%s  [%s/%s]  %3d%%  %s (due %s)\n",
					t.ID, t.Priority, t.Type, t.Progress, t.Title, t.DueDate)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(os.Stdout, "No tasks found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority (HIGH, MEDIUM, LOW)")
	return cmd
}

func taskCreateCmd() *cobra.Command {
	var (
		id          string
		description string
		dueDate     string
		priority    string
		taskType    string
		progress    int
	)
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			if id == "" {
				id = uuid.NewString()
			}
			task := portal.Task{
				ID:          id,
				Title:       args[0],
				Description: description,
				DueDate:     dueDate,
				Priority:    portal.Priority(priority),
				Type:        portal.TaskType(taskType),
				Progress:    progress,
			}
			if err := s.ctrl.CreateTask(task); err != nil {
				s.finish(ctx)
				return err
			}
			if err := s.finish(ctx); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Task id (generated when empty)")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date")
	cmd.Flags().StringVar(&priority, "priority", "MEDIUM", "Priority (HIGH, MEDIUM, LOW)")
	cmd.Flags().StringVar(&taskType, "type", "ADMIN", "Type (TRAINING, EVALUATION, PROJECT_PREP, ADMIN)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress, 0 to 100")
	return cmd
}

func taskDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd, yes, "task "+args[0]); err != nil {
				return err
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.DeleteTask(args[0]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
