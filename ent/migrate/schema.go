// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CertificatesColumns holds the columns for the "certificates" table.
	CertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "issuer", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "issue_month", Type: field.TypeEnum, Nullable: true, Enums: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}},
		{Name: "issue_year", Type: field.TypeInt, Default: 0},
		{Name: "expiry_month", Type: field.TypeEnum, Nullable: true, Enums: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}},
		{Name: "expiry_year", Type: field.TypeInt, Nullable: true},
		{Name: "credential_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "credential_url", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CertificatesTable holds the schema information for the "certificates" table.
	CertificatesTable = &schema.Table{
		Name:       "certificates",
		Columns:    CertificatesColumns,
		PrimaryKey: []*schema.Column{CertificatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "certificate_issue_year",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[4]},
			},
			{
				Name:    "certificate_updated_at",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[11]},
			},
		},
	}
	// ChatbotSettingsColumns holds the columns for the "chatbot_settings" table.
	ChatbotSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "model", Type: field.TypeString, Size: 255, Default: "gpt-4o-mini"},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "knowledge", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatbotSettingsTable holds the schema information for the "chatbot_settings" table.
	ChatbotSettingsTable = &schema.Table{
		Name:       "chatbot_settings",
		Columns:    ChatbotSettingsColumns,
		PrimaryKey: []*schema.Column{ChatbotSettingsColumns[0]},
	}
	// ContactMessagesColumns holds the columns for the "contact_messages" table.
	ContactMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "subject", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContactMessagesTable holds the schema information for the "contact_messages" table.
	ContactMessagesTable = &schema.Table{
		Name:       "contact_messages",
		Columns:    ContactMessagesColumns,
		PrimaryKey: []*schema.Column{ContactMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactmessage_read",
				Unique:  false,
				Columns: []*schema.Column{ContactMessagesColumns[5]},
			},
			{
				Name:    "contactmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactMessagesColumns[6]},
			},
		},
	}
	// CustomFormsColumns holds the columns for the "custom_forms" table.
	CustomFormsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomFormsTable holds the schema information for the "custom_forms" table.
	CustomFormsTable = &schema.Table{
		Name:       "custom_forms",
		Columns:    CustomFormsColumns,
		PrimaryKey: []*schema.Column{CustomFormsColumns[0]},
	}
	// IconVariantsColumns holds the columns for the "icon_variants" table.
	IconVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IconVariantsTable holds the schema information for the "icon_variants" table.
	IconVariantsTable = &schema.Table{
		Name:       "icon_variants",
		Columns:    IconVariantsColumns,
		PrimaryKey: []*schema.Column{IconVariantsColumns[0]},
	}
	// SeoEntriesColumns holds the columns for the "seo_entries" table.
	SeoEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "path", Type: field.TypeString, Unique: true, Size: 500},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "keywords", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "og_image", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "change_freq", Type: field.TypeEnum, Enums: []string{"always", "hourly", "daily", "weekly", "monthly", "yearly", "never"}, Default: "monthly"},
		{Name: "priority", Type: field.TypeFloat64, Default: 0.5},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SeoEntriesTable holds the schema information for the "seo_entries" table.
	SeoEntriesTable = &schema.Table{
		Name:       "seo_entries",
		Columns:    SeoEntriesColumns,
		PrimaryKey: []*schema.Column{SeoEntriesColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "done", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_position",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
		},
	}
	// TechDetailsColumns holds the columns for the "tech_details" table.
	TechDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "website_url", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"Frontend", "Backend", "Database", "DevOps", "Design", "Testing", "Hosting", "AI", "Productivity", "Other"}},
		{Name: "my_stack", Type: field.TypeBool, Default: false},
		{Name: "is_favorite", Type: field.TypeBool, Default: false},
		{Name: "use_case", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "experience", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "purchased", Type: field.TypeBool, Default: false},
		{Name: "year_began_using", Type: field.TypeInt, Default: 0},
		{Name: "month_began_using", Type: field.TypeEnum, Nullable: true, Enums: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}},
		{Name: "skill_level", Type: field.TypeEnum, Nullable: true, Enums: []string{"1", "2", "3", "4", "5"}},
		{Name: "rating", Type: field.TypeEnum, Nullable: true, Enums: []string{"1", "2", "3", "4", "5"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "technology_details", Type: field.TypeUUID, Unique: true},
	}
	// TechDetailsTable holds the schema information for the "tech_details" table.
	TechDetailsTable = &schema.Table{
		Name:       "tech_details",
		Columns:    TechDetailsColumns,
		PrimaryKey: []*schema.Column{TechDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tech_details_technologies_details",
				Columns:    []*schema.Column{TechDetailsColumns[16]},
				RefColumns: []*schema.Column{TechnologiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "techdetail_technology_details",
				Unique:  true,
				Columns: []*schema.Column{TechDetailsColumns[16]},
			},
			{
				Name:    "techdetail_category",
				Unique:  false,
				Columns: []*schema.Column{TechDetailsColumns[2]},
			},
		},
	}
	// TechIconsColumns holds the columns for the "tech_icons" table.
	TechIconsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "should_invert_on_dark", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tech_icon_technology", Type: field.TypeUUID},
		{Name: "tech_icon_variant", Type: field.TypeUUID, Nullable: true},
	}
	// TechIconsTable holds the schema information for the "tech_icons" table.
	TechIconsTable = &schema.Table{
		Name:       "tech_icons",
		Columns:    TechIconsColumns,
		PrimaryKey: []*schema.Column{TechIconsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tech_icons_technologies_technology",
				Columns:    []*schema.Column{TechIconsColumns[6]},
				RefColumns: []*schema.Column{TechnologiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tech_icons_icon_variants_variant",
				Columns:    []*schema.Column{TechIconsColumns[7]},
				RefColumns: []*schema.Column{IconVariantsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "techicon_tech_icon_technology",
				Unique:  false,
				Columns: []*schema.Column{TechIconsColumns[6]},
			},
			{
				Name:    "techicon_tech_icon_variant",
				Unique:  false,
				Columns: []*schema.Column{TechIconsColumns[7]},
			},
			{
				Name:    "techicon_version_tech_icon_technology_tech_icon_variant",
				Unique:  true,
				Columns: []*schema.Column{TechIconsColumns[3], TechIconsColumns[6], TechIconsColumns[7]},
			},
		},
	}
	// TechnologiesColumns holds the columns for the "technologies" table.
	TechnologiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_name", Type: field.TypeString, Size: 255},
		{Name: "old_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TechnologiesTable holds the schema information for the "technologies" table.
	TechnologiesTable = &schema.Table{
		Name:       "technologies",
		Columns:    TechnologiesColumns,
		PrimaryKey: []*schema.Column{TechnologiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "technology_old_id",
				Unique:  false,
				Columns: []*schema.Column{TechnologiesColumns[2]},
			},
			{
				Name:    "technology_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TechnologiesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CertificatesTable,
		ChatbotSettingsTable,
		ContactMessagesTable,
		CustomFormsTable,
		IconVariantsTable,
		SeoEntriesTable,
		TasksTable,
		TechDetailsTable,
		TechIconsTable,
		TechnologiesTable,
		UsersTable,
	}
)

func init() {
	TechDetailsTable.ForeignKeys[0].RefTable = TechnologiesTable
	TechIconsTable.ForeignKeys[0].RefTable = TechnologiesTable
	TechIconsTable.ForeignKeys[1].RefTable = IconVariantsTable
}
