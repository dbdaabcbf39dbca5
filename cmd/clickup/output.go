package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

// render writes v in the selected output format. text is used for the
// default format.
func (a *app) render(v interface{}, text func(w io.Writer)) error {
	switch a.output {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		return writeYAML(a.stdout, v)
	default:
		text(a.stdout)
		return nil
	}
}

// writeYAML goes through JSON first so YAML keys match the API field names.
func writeYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		body := map[string]interface{}{
			"message": err.Error(),
			"code":    mapErrorToExitCode(err),
		}
		if status := clickup.StatusCode(err); status != 0 {
			body["status"] = status
		}
		if ecode := clickup.ErrorCode(err); ecode != "" {
			body["ecode"] = ecode
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{"error": body})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// success reports a completed action that has no resource to show.
func (a *app) success(message string) error {
	return a.render(map[string]string{"message": message}, func(w io.Writer) {
		fmt.Fprintln(w, message)
	})
}

func printWorkspaces(w io.Writer, workspaces []clickup.Workspace) {
	if len(workspaces) == 0 {
		fmt.Fprintln(w, "No workspaces found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\n")
	fmt.Fprintf(tw, "--\t----\n")
	for _, ws := range workspaces {
		fmt.Fprintf(tw, "%s\t%s\n", ws.ID, ws.Name)
	}
	tw.Flush()
}

func printSpaces(w io.Writer, spaces []clickup.Space) {
	if len(spaces) == 0 {
		fmt.Fprintln(w, "No spaces found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tPRIVATE\tARCHIVED\n")
	fmt.Fprintf(tw, "--\t----\t-------\t--------\n")
	for _, s := range spaces {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", s.ID, truncate(s.Name, 40), s.Private, s.Archived)
	}
	tw.Flush()
}

func printSpace(w io.Writer, s *clickup.Space) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", s.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Private:\t%t\n", s.Private)
	fmt.Fprintf(tw, "Archived:\t%t\n", s.Archived)
	if s.Color != nil {
		fmt.Fprintf(tw, "Color:\t%s\n", *s.Color)
	}
	tw.Flush()
}

func printFolders(w io.Writer, folders []clickup.Folder) {
	if len(folders) == 0 {
		fmt.Fprintln(w, "No folders found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tLISTS\tTASKS\n")
	fmt.Fprintf(tw, "--\t----\t-----\t-----\n")
	for _, f := range folders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", f.ID, truncate(f.Name, 40), len(f.Lists), f.TaskCount)
	}
	tw.Flush()
}

func printFolder(w io.Writer, f *clickup.Folder) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", f.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", f.Name)
	fmt.Fprintf(tw, "Space:\t%s\n", refString(f.Space.ID, f.Space.Name))
	fmt.Fprintf(tw, "Tasks:\t%s\n", f.TaskCount)
	fmt.Fprintf(tw, "Archived:\t%t\n", f.Archived)
	tw.Flush()

	for _, l := range f.Lists {
		fmt.Fprintf(w, "  %s [list %s]\n", l.Name, l.ID)
	}
}

func printLists(w io.Writer, lists []clickup.List) {
	if len(lists) == 0 {
		fmt.Fprintln(w, "No lists found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tTASKS\tDUE\n")
	fmt.Fprintf(tw, "--\t----\t-----\t---\n")
	for _, l := range lists {
		tasks := ""
		if l.TaskCount != nil {
			tasks = fmt.Sprintf("%d", *l.TaskCount)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, truncate(l.Name, 40), tasks, millisDate(l.DueDate))
	}
	tw.Flush()
}

func printList(w io.Writer, l *clickup.List) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", l.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", l.Name)
	fmt.Fprintf(tw, "Space:\t%s\n", refString(l.Space.ID, l.Space.Name))
	if l.Folder != nil {
		fmt.Fprintf(tw, "Folder:\t%s\n", refString(l.Folder.ID, l.Folder.Name))
	}
	if l.Content != nil && *l.Content != "" {
		fmt.Fprintf(tw, "Content:\t%s\n", *l.Content)
	}
	if l.Status != nil {
		fmt.Fprintf(tw, "Status:\t%s\n", l.Status.Status)
	}
	if l.Priority != nil {
		fmt.Fprintf(tw, "Priority:\t%s\n", l.Priority.Priority)
	}
	if l.TaskCount != nil {
		fmt.Fprintf(tw, "Tasks:\t%d\n", *l.TaskCount)
	}
	if due := millisDate(l.DueDate); due != "" {
		fmt.Fprintf(tw, "Due:\t%s\n", due)
	}
	fmt.Fprintf(tw, "Archived:\t%t\n", l.Archived)
	tw.Flush()
}

// printTaskList prints one page of tasks and says whether more follow.
func printTaskList(w io.Writer, resp *clickup.TasksResponse, page int) {
	if len(resp.Tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSTATUS\tPRIORITY\tDUE\n")
	fmt.Fprintf(tw, "--\t----\t------\t--------\t---\n")
	for _, t := range resp.Tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, truncate(t.Name, 40), statusString(t.Status), priorityString(t.Priority), millisDate(t.DueDate))
	}
	tw.Flush()

	if !resp.LastPage {
		fmt.Fprintf(w, "\nMore tasks available: use --page %d\n", page+1)
	}
}

func printTask(w io.Writer, t *clickup.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", t.Name)
	fmt.Fprintf(tw, "Status:\t%s\n", statusString(t.Status))
	fmt.Fprintf(tw, "Priority:\t%s\n", priorityString(t.Priority))
	if t.Description != nil && *t.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", *t.Description)
	}
	if t.List != nil {
		fmt.Fprintf(tw, "List:\t%s\n", refString(t.List.ID, t.List.Name))
	}
	if t.Parent != nil && *t.Parent != "" {
		fmt.Fprintf(tw, "Parent:\t%s\n", *t.Parent)
	}
	if len(t.Assignees) > 0 {
		names := make([]string, len(t.Assignees))
		for i, u := range t.Assignees {
			names[i] = u.Username
		}
		fmt.Fprintf(tw, "Assignees:\t%s\n", strings.Join(names, ", "))
	}
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = tag.Name
		}
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(tags, ", "))
	}
	if due := millisDate(t.DueDate); due != "" {
		fmt.Fprintf(tw, "Due:\t%s\n", due)
	}
	if created, ok := t.Created(); ok {
		fmt.Fprintf(tw, "Created:\t%s\n", created.Format("2006-01-02 15:04:05"))
	}
	if updated, ok := t.Updated(); ok {
		fmt.Fprintf(tw, "Updated:\t%s\n", updated.Format("2006-01-02 15:04:05"))
	}
	if t.URL != nil {
		fmt.Fprintf(tw, "URL:\t%s\n", *t.URL)
	}
	for _, f := range t.CustomFields {
		if f.Value != nil {
			fmt.Fprintf(tw, "%s:\t%v\n", f.Name, f.Value)
		}
	}
	tw.Flush()
}

func printFields(w io.Writer, fields []clickup.CustomFieldDefinition) {
	if len(fields) == 0 {
		fmt.Fprintln(w, "No custom fields found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tTYPE\tOPTIONS\n")
	fmt.Fprintf(tw, "--\t----\t----\t-------\n")
	for _, f := range fields {
		var options []string
		if f.TypeConfig != nil {
			for _, opt := range f.TypeConfig.Options {
				options = append(options, opt.Name)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, truncate(f.Name, 30), f.Type, strings.Join(options, ", "))
	}
	tw.Flush()
}

func statusString(s *clickup.Status) string {
	if s == nil {
		return ""
	}
	return s.Status
}

func priorityString(p *clickup.Priority) string {
	if p == nil {
		return "-"
	}
	return p.Priority
}

func refString(id, name string) string {
	if name == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", name, id)
}

// millisDate formats a ClickUp timestamp as a calendar date.
func millisDate(s *string) string {
	if s == nil {
		return ""
	}
	t, ok := clickup.ParseMillis(*s)
	if !ok {
		return ""
	}
	return t.Format(time.DateOnly)
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
