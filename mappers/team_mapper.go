package mappers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/models"
	"SWJTUCTF/stores"
)

func MapUpdateTeamReqToPatch(req dto.UpdateTeamReq) stores.TeamPatch {
	return stores.TeamPatch{
		Name:        req.Name,
		Avatar:      req.Avatar,
		Description: req.Description,
	}
}

func MapAdminUpdateTeamReqToPatch(req dto.AdminUpdateTeamReq) stores.TeamPatch {
	patch := MapUpdateTeamReqToPatch(req.UpdateTeamReq)
	if req.Members != nil {
		patch.Members = *req.Members
		if patch.Members == nil {
			patch.Members = []models.TeamMember{}
		}
	}
	return patch
}

// MapTeamForViewer 非成员看不到邀请码
func MapTeamForViewer(t models.Team, userID int) models.Team {
	if !t.HasMember(userID) {
		t.InviteCode = ""
	}
	return t
}

func MapTeamToAdminItem(t models.Team) dto.AdminTeamItem {
	item := dto.AdminTeamItem{
		ID:          t.ID,
		Name:        t.Name,
		Avatar:      t.Avatar,
		MemberCount: len(t.Members),
		InviteCode:  t.InviteCode,
	}
	for _, m := range t.Members {
		if t.IsCreator(m.ID) {
			item.CreatorUsername = m.Username
			break
		}
	}
	return item
}
