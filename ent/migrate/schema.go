// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ResolutionEventsColumns holds the columns for the "resolution_events" table.
	ResolutionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "unknown"},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "success", Type: field.TypeBool},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}
	// ResolutionEventsTable holds the schema information for the "resolution_events" table.
	ResolutionEventsTable = &schema.Table{
		Name:       "resolution_events",
		Columns:    ResolutionEventsColumns,
		PrimaryKey: []*schema.Column{ResolutionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resolutionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResolutionEventsColumns[1]},
			},
			{
				Name:    "resolutionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResolutionEventsColumns[2]},
			},
			{
				Name:    "resolutionevent_source",
				Unique:  false,
				Columns: []*schema.Column{ResolutionEventsColumns[5]},
			},
			{
				Name:    "resolutionevent_success",
				Unique:  false,
				Columns: []*schema.Column{ResolutionEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ResolutionEventsTable,
	}
)

func init() {
}
