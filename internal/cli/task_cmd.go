package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage work categories",
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a work category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Tasks.CreateCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.done(cmd, c, "Created category %s", c.Name)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List work categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Tasks.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return app.renderText(cmd, categories, func() string {
				if len(categories) == 0 {
					return "No categories found.\n"
				}
				return formatter.FormatCategories(categories)
			})
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks that need effort before an event",
	}
	cmd.AddCommand(newTaskAddCmd(app), newTaskListCmd(app))
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		event, title, category string
		estimate               float64
	)
	loc, _ := app.Config.Location()
	deadline := &instantFlag{loc: loc}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			t := &domain.Task{EventID: eventID, Title: title, EstimateHours: estimate}
			if category != "" {
				c, err := app.Tasks.ResolveCategory(ctx, category)
				if err != nil {
					return fmt.Errorf("category %q: %w", category, err)
				}
				t.CategoryID = &c.ID
			}
			if !deadline.t.IsZero() {
				d := deadline.t.UTC()
				t.Deadline = &d
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			return app.done(cmd, t, "Added task %s (%s) %s", t.Title, formatter.FormatHours(t.EstimateHours), formatter.TruncID(t.ID))
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Estimated effort in hours")
	cmd.Flags().StringVar(&category, "category", "", "Work category name")
	cmd.Flags().Var(deadline, "deadline", "Deadline (RFC 3339 or YYYY-MM-DD HH:MM)")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an event's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByEvent(ctx, eventID)
			if err != nil {
				return err
			}
			categories, err := app.Tasks.ListCategories(ctx)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(categories))
			for _, c := range categories {
				names[c.ID] = c.Name
			}
			return app.renderText(cmd, tasks, func() string {
				if len(tasks) == 0 {
					return "No tasks found.\n"
				}
				return formatter.FormatTasks(tasks, names, time.Now())
			})
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	return cmd
}

func newAllocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Book task effort onto days",
	}
	cmd.AddCommand(newAllocAddCmd(app), newAllocListCmd(app))
	return cmd
}

func newAllocAddCmd(app *App) *cobra.Command {
	var (
		task  string
		date  dateFlag
		hours float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Allocate hours of a task to a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date.key == "" {
				return fmt.Errorf("--date is required")
			}
			a := &domain.Allocation{TaskID: task, Date: date.key, EffortHours: hours}
			if err := app.Tasks.Allocate(cmd.Context(), a); err != nil {
				return err
			}
			return app.done(cmd, a, "Allocated %s on %s", formatter.FormatHours(a.EffortHours), a.Date)
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task ID")
	cmd.Flags().Var(&date, "date", "Day of work (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Effort in hours")
	return cmd
}

func newAllocListCmd(app *App) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an event's allocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			allocations, err := app.Tasks.ListAllocations(ctx, eventID)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByEvent(ctx, eventID)
			if err != nil {
				return err
			}
			titles := make(map[string]string, len(tasks))
			for _, t := range tasks {
				titles[t.ID] = t.Title
			}
			return app.renderText(cmd, allocations, func() string {
				if len(allocations) == 0 {
					return "No allocations found.\n"
				}
				return formatter.FormatAllocations(allocations, titles)
			})
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	return cmd
}
