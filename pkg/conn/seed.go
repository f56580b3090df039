/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package conn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/masteryyh/tablekit/pkg/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type presetContact struct {
	Name    string
	Email   string
	Company string
	Role    string
	Active  bool
	Tags    string
}

var presetContacts = []presetContact{
	{Name: "Ada Lovelace", Email: "ada@analytical.example", Company: "Analytical Engines", Role: "admin", Active: true, Tags: `["math","founder"]`},
	{Name: "Alan Turing", Email: "alan@bletchley.example", Company: "Bletchley Park", Role: "editor", Active: true, Tags: `["crypto"]`},
	{Name: "Grace Hopper", Email: "grace@navy.example", Company: "US Navy", Role: "admin", Active: true, Tags: `["compilers","cobol"]`},
	{Name: "Edsger Dijkstra", Email: "edsger@tue.example", Company: "TU Eindhoven", Role: "viewer", Active: false, Tags: `["algorithms"]`},
	{Name: "Barbara Liskov", Email: "barbara@mit.example", Company: "MIT", Role: "editor", Active: true, Tags: `["types"]`},
	{Name: "Donald Knuth", Email: "don@stanford.example", Company: "Stanford", Role: "viewer", Active: true, Tags: `["tex","algorithms"]`},
	{Name: "Margaret Hamilton", Email: "margaret@apollo.example", Company: "MIT Instrumentation Lab", Role: "admin", Active: true, Tags: `["apollo"]`},
	{Name: "Ken Thompson", Email: "ken@bell.example", Company: "Bell Labs", Role: "editor", Active: false, Tags: `["unix","go"]`},
	{Name: "Rob Pike", Email: "rob@bell.example", Company: "Bell Labs", Role: "editor", Active: true, Tags: `["plan9","go"]`},
	{Name: "Frances Allen", Email: "frances@ibm.example", Company: "IBM", Role: "viewer", Active: true, Tags: `["optimization"]`},
	{Name: "John Backus", Email: "john@ibm.example", Company: "IBM", Role: "viewer", Active: false, Tags: `["fortran"]`},
	{Name: "Radia Perlman", Email: "radia@dec.example", Company: "DEC", Role: "editor", Active: true, Tags: `["networking"]`},
}

// seedContacts fills the contacts table once, an existing row stops seeding.
func seedContacts(ctx context.Context, db *gorm.DB) error {
	count, err := gorm.G[models.Contact](db).Count(ctx, "id")
	if err != nil {
		return fmt.Errorf("failed to count contacts: %w", err)
	}
	if count > 0 {
		slog.DebugContext(ctx, "contacts already seeded", "count", count)
		return nil
	}

	contacts := make([]models.Contact, 0, len(presetContacts))
	for _, pc := range presetContacts {
		contacts = append(contacts, models.Contact{
			Name:    pc.Name,
			Email:   pc.Email,
			Company: pc.Company,
			Role:    pc.Role,
			Active:  pc.Active,
			Tags:    datatypes.JSON(pc.Tags),
		})
	}

	if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&contacts, 50).Error
	}); err != nil {
		slog.ErrorContext(ctx, "failed to seed contacts", "error", err)
		return err
	}
	slog.InfoContext(ctx, "seeded demo contacts", "count", len(contacts))
	return nil
}
