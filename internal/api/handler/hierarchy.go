package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modelingevolution/clickup/internal/api/request"
	"github.com/modelingevolution/clickup/internal/api/response"
	"github.com/modelingevolution/clickup/internal/store"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// HierarchyHandler serves workspaces, spaces, folders and lists.
type HierarchyHandler struct {
	store *store.Store
}

// NewHierarchyHandler creates a new HierarchyHandler.
func NewHierarchyHandler(st *store.Store) *HierarchyHandler {
	return &HierarchyHandler{store: st}
}

// ListTeams handles GET /team.
func (h *HierarchyHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	response.OK(w, clickup.WorkspacesResponse{Teams: h.store.Teams()})
}

// ListSpaces handles GET /team/{team_id}/space.
func (h *HierarchyHandler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	archived, err := request.Archived(r.URL.Query())
	if err != nil {
		response.Error(w, err)
		return
	}

	spaces, err := h.store.Spaces(chi.URLParam(r, "team_id"), archived)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, clickup.SpacesResponse{Spaces: spaces})
}

// CreateSpace handles POST /team/{team_id}/space.
func (h *HierarchyHandler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	var req clickup.CreateSpaceRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.CreateSpace(chi.URLParam(r, "team_id"), req))
}

// GetSpace handles GET /space/{space_id}.
func (h *HierarchyHandler) GetSpace(w http.ResponseWriter, r *http.Request) {
	respond(w)(h.store.Space(chi.URLParam(r, "space_id")))
}

// UpdateSpace handles PUT /space/{space_id}.
func (h *HierarchyHandler) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	var req clickup.UpdateSpaceRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.UpdateSpace(chi.URLParam(r, "space_id"), req))
}

// DeleteSpace handles DELETE /space/{space_id}.
func (h *HierarchyHandler) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, h.store.DeleteSpace(chi.URLParam(r, "space_id")))
}

// ListFolders handles GET /space/{space_id}/folder.
func (h *HierarchyHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.store.Folders(chi.URLParam(r, "space_id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, clickup.FoldersResponse{Folders: folders})
}

// CreateFolder handles POST /space/{space_id}/folder.
func (h *HierarchyHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req clickup.CreateFolderRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.CreateFolder(chi.URLParam(r, "space_id"), req))
}

// GetFolder handles GET /folder/{folder_id}.
func (h *HierarchyHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	respond(w)(h.store.Folder(chi.URLParam(r, "folder_id")))
}

// UpdateFolder handles PUT /folder/{folder_id}.
func (h *HierarchyHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	var req clickup.UpdateFolderRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.UpdateFolder(chi.URLParam(r, "folder_id"), req))
}

// DeleteFolder handles DELETE /folder/{folder_id}.
func (h *HierarchyHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, h.store.DeleteFolder(chi.URLParam(r, "folder_id")))
}

// ListLists handles GET /folder/{folder_id}/list.
func (h *HierarchyHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.store.Lists(chi.URLParam(r, "folder_id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, clickup.ListsResponse{Lists: lists})
}

// ListFolderlessLists handles GET /space/{space_id}/list.
func (h *HierarchyHandler) ListFolderlessLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.store.FolderlessLists(chi.URLParam(r, "space_id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, clickup.ListsResponse{Lists: lists})
}

// CreateListInFolder handles POST /folder/{folder_id}/list.
func (h *HierarchyHandler) CreateListInFolder(w http.ResponseWriter, r *http.Request) {
	var req clickup.CreateListRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.CreateListInFolder(chi.URLParam(r, "folder_id"), req))
}

// CreateListInSpace handles POST /space/{space_id}/list.
func (h *HierarchyHandler) CreateListInSpace(w http.ResponseWriter, r *http.Request) {
	var req clickup.CreateListRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.CreateListInSpace(chi.URLParam(r, "space_id"), req))
}

// GetList handles GET /list/{list_id}.
func (h *HierarchyHandler) GetList(w http.ResponseWriter, r *http.Request) {
	respond(w)(h.store.List(chi.URLParam(r, "list_id")))
}

// UpdateList handles PUT /list/{list_id}.
func (h *HierarchyHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	var req clickup.UpdateListRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.UpdateList(chi.URLParam(r, "list_id"), req))
}

// DeleteList handles DELETE /list/{list_id}.
func (h *HierarchyHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, h.store.DeleteList(chi.URLParam(r, "list_id")))
}

// respond writes the result of a store call that returns a value.
func respond(w http.ResponseWriter) func(interface{}, error) {
	return func(v interface{}, err error) {
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, v)
	}
}

func respondEmpty(w http.ResponseWriter, err error) {
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Empty(w)
}
