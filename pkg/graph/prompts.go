package graph

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// finalAnswerPattern extracts the final answer from the last assistant
// message. Dot-all and case-insensitive.
var finalAnswerPattern = regexp.MustCompile(`(?is)<final_answer>(.*?)</final_answer>`)

// taskCompletedToken is the alternative terminal marker.
const taskCompletedToken = "TASK COMPLETED"

// hasTerminalMarker reports whether assistant content signals completion.
func hasTerminalMarker(content string) bool {
	return finalAnswerPattern.MatchString(content) || strings.Contains(content, taskCompletedToken)
}

// extractFinalAnswer pulls the final answer out of assistant content,
// falling back to the whole content when only the token marker is present.
func extractFinalAnswer(content string) string {
	if m := finalAnswerPattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

const plannerSystemPrompt = `You are the planning component of an autonomous software agent working inside a sandboxed workspace.
Given the conversation so far, the current plan, and the progress summary, produce an updated plan.
Respond with a single JSON object and nothing else:
{"plan": "<markdown plan>", "plan_steps": [{"title": "...", "description": "...", "status": "todo|in_progress|completed"}]}`

// plannerUserPrompt renders the planner input.
func plannerUserPrompt(state *State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Goal:\n%s\n", state.Goal)
	if state.Plan != "" {
		fmt.Fprintf(&sb, "\nCurrent plan:\n%s\n", state.Plan)
	}
	if state.Summary != "" {
		fmt.Fprintf(&sb, "\nProgress summary:\n%s\n", state.Summary)
	}
	if state.TerminalOutput != "" {
		fmt.Fprintf(&sb, "\nLast tool output:\n%s\n", state.TerminalOutput)
	}
	return sb.String()
}

// plannerOutput is the structured planner response.
type plannerOutput struct {
	Plan      string     `json:"plan"`
	PlanSteps []PlanStep `json:"plan_steps"`
}

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parsePlannerOutput decodes the planner's structured response, tolerating a
// markdown code fence around the JSON. The error signals fallback to a
// free-form plan.
func parsePlannerOutput(content string) (*plannerOutput, error) {
	candidate := strings.TrimSpace(content)
	if m := codeFencePattern.FindStringSubmatch(candidate); m != nil {
		candidate = strings.TrimSpace(m[1])
	}
	var out plannerOutput
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return nil, err
	}
	if out.Plan == "" && len(out.PlanSteps) == 0 {
		return nil, fmt.Errorf("planner output has no plan")
	}
	for i, step := range out.PlanSteps {
		switch step.Status {
		case StepTodo, StepInProgress, StepCompleted:
		default:
			return nil, fmt.Errorf("plan step %d has invalid status %q", i, step.Status)
		}
	}
	return &out, nil
}

// agentSystemPrompt builds the tool-augmented model's system prompt,
// enumerating uploaded documents.
func agentSystemPrompt(state *State, documents []string) string {
	var sb strings.Builder
	sb.WriteString(`You are an autonomous software agent working inside a sandboxed workspace.
Use the available tools to make progress on the plan. Make at most one tool call per step.
When the goal is fully achieved, reply with the final answer wrapped in <final_answer>...</final_answer>.
`)
	if state.Plan != "" {
		fmt.Fprintf(&sb, "\nCurrent plan:\n%s\n", state.Plan)
	}
	if state.FileTree != "" {
		fmt.Fprintf(&sb, "\nWorkspace files:\n%s\n", state.FileTree)
	}
	if len(documents) > 0 {
		sb.WriteString("\nUploaded documents available under the workspace uploads directory:\n")
		for _, doc := range documents {
			fmt.Fprintf(&sb, "- %s\n", doc)
		}
	}
	return sb.String()
}

const summarizerSystemPrompt = `You summarize the progress of an autonomous agent run.
Update the running summary with what has been attempted, what worked, and what remains.
Respond with the updated summary text only. Do not call tools.`

// summarizerUserPrompt renders the summarizer input.
func summarizerUserPrompt(state *State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Goal:\n%s\n", state.Goal)
	if state.Summary != "" {
		fmt.Fprintf(&sb, "\nPrevious summary:\n%s\n", state.Summary)
	}
	if state.TerminalOutput != "" {
		fmt.Fprintf(&sb, "\nLast tool output:\n%s\n", state.TerminalOutput)
	}
	return sb.String()
}

// outstandingStepsPrompt lists unfinished plan steps for re-entry after a
// failed completion check.
func outstandingStepsPrompt(steps []PlanStep) string {
	var sb strings.Builder
	sb.WriteString("The task is not complete. The following plan steps are still outstanding:\n")
	for _, step := range steps {
		fmt.Fprintf(&sb, "- [%s] %s: %s\n", step.Status, step.Title, step.Description)
	}
	sb.WriteString("Continue working on them.")
	return sb.String()
}
