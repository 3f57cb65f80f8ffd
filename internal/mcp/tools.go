package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"nexusportal/internal/portal"
)

type SearchKnowledgeInput struct {
	Query string `json:"query" jsonschema:"search terms"`
}

type GetDocumentInput struct {
	ID string `json:"id" jsonschema:"document id"`
}

type ListTasksInput struct {
	Priority string `json:"priority,omitempty" jsonschema:"restrict to HIGH, MEDIUM, or LOW"`
}

type ListConsultantsInput struct {
	Availability string `json:"availability,omitempty" jsonschema:"restrict to Available, On Bench, or Assigned"`
}

type ListEngagementsInput struct {
	Status string `json:"status,omitempty" jsonschema:"restrict to Pipeline, Active, Completed, or On Hold"`
}

type GetEngagementInput struct {
	ID string `json:"id" jsonschema:"engagement id"`
}

type SearchHitOutput struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
	Score   float64  `json:"score"`
	Snippet string   `json:"snippet"`
}

type SearchKnowledgeOutput struct {
	Results []SearchHitOutput `json:"results"`
}

type DocumentOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	LastUpdated string   `json:"last_updated"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

type TaskOutput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Progress int    `json:"progress"`
}

type ListTasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
}

type ConsultantOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Rate         float64 `json:"rate"`
	Specialty    string  `json:"specialty"`
	Availability string  `json:"availability"`
}

type ListConsultantsOutput struct {
	Consultants []ConsultantOutput `json:"consultants"`
}

type EngagementSummaryOutput struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
	TeamSize    int    `json:"team_size"`
	OpenNeeds   int    `json:"open_needs"`
}

type ListEngagementsOutput struct {
	Engagements []EngagementSummaryOutput `json:"engagements"`
}

type StaffingNeedOutput struct {
	ID       string   `json:"id"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
	FilledBy string   `json:"filled_by,omitempty"`
}

type EngagementOutput struct {
	ID            string               `json:"id"`
	ClientName    string               `json:"client_name"`
	ProjectName   string               `json:"project_name"`
	Status        string               `json:"status"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	PricingModel  string               `json:"pricing_model"`
	Budget        float64              `json:"budget"`
	Description   string               `json:"description"`
	Team          []string             `json:"team"`
	StaffingNeeds []StaffingNeedOutput `json:"staffing_needs"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_knowledge",
		Description: "Full-text search over the knowledge base",
	}, s.handleSearchKnowledge)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_document",
		Description: "Retrieve a knowledge document with its full content",
	}, s.handleGetDocument)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_tasks",
		Description: "List tasks with an optional priority filter",
	}, s.handleListTasks)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_consultants",
		Description: "List consultants with an optional availability filter",
	}, s.handleListConsultants)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_engagements",
		Description: "List engagement summaries with an optional status filter",
	}, s.handleListEngagements)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_engagement",
		Description: "Retrieve an engagement with its team and staffing needs",
	}, s.handleGetEngagement)
}

func (s *Server) handleSearchKnowledge(ctx context.Context, req *sdk.CallToolRequest, input SearchKnowledgeInput) (*sdk.CallToolResult, SearchKnowledgeOutput, error) {
	if input.Query == "" {
		return nil, SearchKnowledgeOutput{}, fmt.Errorf("query is required")
	}
	results, err := s.db.SearchKnowledge(ctx, input.Query)
	if err != nil {
		return nil, SearchKnowledgeOutput{}, err
	}

	output := make([]SearchHitOutput, 0, len(results))
	for _, r := range results {
		output = append(output, SearchHitOutput{
			ID:      r.ID,
			Title:   r.Title,
			Type:    string(r.Type),
			Tags:    r.Tags,
			Score:   r.Score,
			Snippet: r.Snippet,
		})
	}
	return nil, SearchKnowledgeOutput{Results: output}, nil
}

func (s *Server) handleGetDocument(ctx context.Context, req *sdk.CallToolRequest, input GetDocumentInput) (*sdk.CallToolResult, DocumentOutput, error) {
	if input.ID == "" {
		return nil, DocumentOutput{}, fmt.Errorf("id is required")
	}
	doc, err := s.db.GetKnowledgeDoc(ctx, input.ID)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	if doc == nil {
		return nil, DocumentOutput{}, fmt.Errorf("document not found")
	}
	return nil, DocumentOutput{
		ID:          doc.ID,
		Title:       doc.Title,
		Type:        string(doc.Type),
		LastUpdated: doc.LastUpdated,
		Content:     doc.Content,
		Tags:        doc.Tags,
	}, nil
}

func (s *Server) handleListTasks(ctx context.Context, req *sdk.CallToolRequest, input ListTasksInput) (*sdk.CallToolResult, ListTasksOutput, error) {
	tasks, err := s.db.ListTasks(ctx)
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	output := make([]TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		if input.Priority != "" && string(t.Priority) != input.Priority {
			continue
		}
		output = append(output, TaskOutput{
			ID:       t.ID,
			Title:    t.Title,
			DueDate:  t.DueDate,
			Priority: string(t.Priority),
			Type:     string(t.Type),
			Progress: t.Progress,
		})
	}
	return nil, ListTasksOutput{Tasks: output}, nil
}

func (s *Server) handleListConsultants(ctx context.Context, req *sdk.CallToolRequest, input ListConsultantsInput) (*sdk.CallToolResult, ListConsultantsOutput, error) {
	consultants, err := s.db.ListConsultants(ctx)
	if err != nil {
		return nil, ListConsultantsOutput{}, err
	}

	output := make([]ConsultantOutput, 0, len(consultants))
	for _, c := range consultants {
		if input.Availability != "" && string(c.Availability) != input.Availability {
			continue
		}
		output = append(output, ConsultantOutput{
			ID:           c.ID,
			Name:         c.Name,
			Role:         c.Role,
			Rate:         c.Rate,
			Specialty:    c.Specialty,
			Availability: string(c.Availability),
		})
	}
	return nil, ListConsultantsOutput{Consultants: output}, nil
}

func (s *Server) handleListEngagements(ctx context.Context, req *sdk.CallToolRequest, input ListEngagementsInput) (*sdk.CallToolResult, ListEngagementsOutput, error) {
	engagements, err := s.db.ListEngagements(ctx)
	if err != nil {
		return nil, ListEngagementsOutput{}, err
	}

	output := make([]EngagementSummaryOutput, 0, len(engagements))
	for _, e := range engagements {
		if input.Status != "" && string(e.Status) != input.Status {
			continue
		}
		output = append(output, engagementSummaryOutput(e))
	}
	return nil, ListEngagementsOutput{Engagements: output}, nil
}

func (s *Server) handleGetEngagement(ctx context.Context, req *sdk.CallToolRequest, input GetEngagementInput) (*sdk.CallToolResult, EngagementOutput, error) {
	if input.ID == "" {
		return nil, EngagementOutput{}, fmt.Errorf("id is required")
	}
	e, err := s.db.GetEngagement(ctx, input.ID)
	if err != nil {
		return nil, EngagementOutput{}, err
	}
	if e == nil {
		return nil, EngagementOutput{}, fmt.Errorf("engagement not found")
	}

	needs := make([]StaffingNeedOutput, 0, len(e.StaffingNeeds))
	for _, n := range e.StaffingNeeds {
		needs = append(needs, StaffingNeedOutput{
			ID:       n.ID,
			Role:     n.Role,
			Skills:   n.Skills,
			FilledBy: n.FilledBy,
		})
	}
	return nil, EngagementOutput{
		ID:            e.ID,
		ClientName:    e.ClientName,
		ProjectName:   e.ProjectName,
		Status:        string(e.Status),
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		PricingModel:  string(e.PricingModel),
		Budget:        e.Budget,
		Description:   e.Description,
		Team:          e.Team,
		StaffingNeeds: needs,
	}, nil
}

func engagementSummaryOutput(e portal.Engagement) EngagementSummaryOutput {
	open := 0
	for _, n := range e.StaffingNeeds {
		if n.FilledBy == "" {
			open++
		}
	}
	return EngagementSummaryOutput{
		ID:          e.ID,
		ClientName:  e.ClientName,
		ProjectName: e.ProjectName,
		Status:      string(e.Status),
		TeamSize:    len(e.Team),
		OpenNeeds:   open,
	}
}
