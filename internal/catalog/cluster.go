// Package catalog declares the entity types served by this deployment
// and registers their sheet definitions. Each definition is a complete
// description of one sheet: tab name, codec profile, header aliases and
// the field table used for both reading and writing.
package catalog

import (
	"time"

	"github.com/finvault/sheetdb/internal/store"
)

// Cluster is one row of the cluster inventory sheet.
type Cluster struct {
	ID             string
	ClusterName    string
	Environment    string
	Region         string
	NodeCount      int
	Tags           []string
	Active         bool
	CommissionedOn time.Time
}

// ClusterDefinition maps Cluster onto the "Clusters" sheet. The sheet
// predates this system and uses spaced header text and Yes/No booleans,
// hence the alias table and profile choice.
func ClusterDefinition() store.Definition[Cluster] {
	return store.Definition[Cluster]{
		Sheet:   "Clusters",
		Profile: store.ProfileYesNo,
		Aliases: map[string]string{
			"Cluster Name":    "ClusterName",
			"Node Count":      "NodeCount",
			"Commissioned On": "CommissionedOn",
		},
		ID: func(c *Cluster) *string { return &c.ID },
		Fields: []store.FieldSpec[Cluster]{
			store.Text("Id", func(c *Cluster) *string { return &c.ID }),
			store.Text("ClusterName", func(c *Cluster) *string { return &c.ClusterName }),
			store.Text("Environment", func(c *Cluster) *string { return &c.Environment }),
			store.Text("Region", func(c *Cluster) *string { return &c.Region }),
			store.Int("NodeCount", func(c *Cluster) *int { return &c.NodeCount }),
			store.List("Tags", func(c *Cluster) *[]string { return &c.Tags }),
			store.Bool("Active", func(c *Cluster) *bool { return &c.Active }),
			store.Date("CommissionedOn", func(c *Cluster) *time.Time { return &c.CommissionedOn }),
		},
	}
}

func init() {
	store.Register(store.DefineSheet("clusters", "Clusters", ClusterDefinition()))
}
