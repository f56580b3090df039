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

package routes

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/tablekit/pkg/customerrors"
	"github.com/masteryyh/tablekit/pkg/services"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
	"github.com/masteryyh/tablekit/pkg/utils/response"
)

type TableRoutes struct {
	service *services.TableService
}

var (
	tableRoutes *TableRoutes
	tableOnce   sync.Once
)

func NewTableRoutes(service *services.TableService) *TableRoutes {
	return &TableRoutes{service: service}
}

func GetTableRoutes() *TableRoutes {
	tableOnce.Do(func() {
		tableRoutes = NewTableRoutes(services.GetTableService())
	})
	return tableRoutes
}

type tableURI struct {
	Name string `uri:"name" binding:"required,code"`
}

func (r *TableRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tableGroup := router.Group("/tables")
	{
		tableGroup.GET("", r.ListTables)
		tableGroup.GET("/:name", r.GetTablePage)
	}
}

func (r *TableRoutes) ListTables(c *gin.Context) {
	var pageRequest pagination.PageRequest
	if err := c.ShouldBindQuery(&pageRequest); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}
	pageRequest.ApplyDefaults()

	tables, err := r.service.ListTables(c, &pageRequest)
	if err != nil {
		response.Failed(c, err)
		return
	}
	response.OK(c, tables)
}

// GetTablePage never rejects search, sort or paging parameters, invalid values
// fall back to the table defaults.
func (r *TableRoutes) GetTablePage(c *gin.Context) {
	var uri tableURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}

	page, err := r.service.GetTablePage(c, uri.Name, c.Request.URL)
	if err != nil {
		response.Failed(c, err)
		return
	}
	response.OK(c, page)
}
