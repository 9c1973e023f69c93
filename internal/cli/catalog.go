package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) talentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "talents",
		Short: "Browse the talent directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			talents, err := a.client.ListTalents(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(talents))
			for _, t := range talents {
				rows = append(rows, []string{
					t.ID, t.Name, orDash(t.Skill), orDash(t.University),
					fmt.Sprintf("%.1f (%d)", t.Rating, t.Reviews), orDash(t.HourlyRate),
				})
			}
			renderTable(a.out, []string{"ID", "NAME", "SKILL", "UNIVERSITY", "RATING", "RATE"}, rows)
			return nil
		},
	}
}

func (a *App) libraryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Browse the resource library",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "categories",
			Short: "List library categories",
			RunE: func(cmd *cobra.Command, args []string) error {
				categories, err := a.client.ListLibraryCategories(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(categories))
				for _, c := range categories {
					rows = append(rows, []string{c.ID, c.Name})
				}
				renderTable(a.out, []string{"ID", "NAME"}, rows)
				return nil
			},
		},
		&cobra.Command{
			Use:   "resources",
			Short: "List library resources",
			RunE: func(cmd *cobra.Command, args []string) error {
				resources, err := a.client.ListLibraryResources(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(resources))
				for _, r := range resources {
					premium := ""
					if r.IsPremium {
						premium = "premium"
					}
					rows = append(rows, []string{r.ID, truncate(r.Title, 40), r.Type, orDash(r.SizeLabel), premium})
				}
				renderTable(a.out, []string{"ID", "TITLE", "TYPE", "SIZE", ""}, rows)
				return nil
			},
		},
	)
	return cmd
}

func (a *App) coursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the training catalog",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List courses",
			RunE: func(cmd *cobra.Command, args []string) error {
				courses, err := a.client.ListCourses(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(courses))
				for _, c := range courses {
					premium := ""
					if c.IsPremium {
						premium = "premium"
					}
					rows = append(rows, []string{c.ID, truncate(c.Title, 40), orDash(c.Level), premium})
				}
				renderTable(a.out, []string{"ID", "TITLE", "LEVEL", ""}, rows)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <course-id>",
			Short: "Show a course with its modules and lessons",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				course, err := a.client.GetCourse(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s (%s)\n", course.Title, orDash(course.Level))
				if course.Description != "" {
					fmt.Fprintln(a.out, course.Description)
				}
				for _, module := range course.Modules {
					fmt.Fprintf(a.out, "%d. %s\n", module.Order, module.Title)
					for _, lesson := range module.Lessons {
						duration := ""
						if lesson.DurationMinutes > 0 {
							duration = " (" + strconv.Itoa(lesson.DurationMinutes) + "m)"
						}
						fmt.Fprintf(a.out, "   - %s [%s]%s\n", lesson.Title, lesson.Type, duration)
					}
				}
				return nil
			},
		},
	)
	return cmd
}

func (a *App) mentorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mentors",
		Short: "Browse the mentorship directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			mentors, err := a.client.ListMentors(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(mentors))
			for _, m := range mentors {
				rate := "-"
				if m.HourlyRate > 0 {
					rate = fmt.Sprintf("%.0f/h", m.HourlyRate)
				}
				rows = append(rows, []string{m.ID, m.FullName, orDash(m.Headline), orDash(m.Company), rate})
			}
			renderTable(a.out, []string{"ID", "NAME", "HEADLINE", "COMPANY", "RATE"}, rows)
			return nil
		},
	}
}

func (a *App) portfolioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Show your portfolio overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			overview, err := a.client.MyPortfolio(cmd.Context(), token)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, orDash(overview.Headline))
			if overview.Bio != "" {
				fmt.Fprintln(a.out, overview.Bio)
			}
			fmt.Fprintf(a.out, "Projects: %d  Certifications: %d  Testimonials: %d\n",
				overview.ProjectsCount, overview.CertificationsCount, overview.TestimonialsCount)
			return nil
		},
	}
}
