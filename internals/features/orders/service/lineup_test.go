package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "rbofficial_backend/internals/features/events/model"
	"rbofficial_backend/internals/features/orders/model"
	"rbofficial_backend/internals/features/orders/service"
)

func specialEvent(lineup ...uuid.UUID) *eventModel.EventModel {
	theme := "Summer Night"
	color := "#ff66aa"
	ev := &eventModel.EventModel{
		EventID:         uuid.New(),
		EventName:       "RB Summer Special",
		EventIsSpecial:  true,
		EventThemeName:  &theme,
		EventThemeColor: &color,
	}
	for _, id := range lineup {
		ev.Lineup = append(ev.Lineup, eventModel.EventLineupModel{
			EventLineupEventID:  ev.EventID,
			EventLineupMemberID: id,
		})
	}
	return ev
}

func TestCheckLineup_RegularEventTidakDigating(t *testing.T) {
	ev := &eventModel.EventModel{EventID: uuid.New(), EventName: "Regular Show"}
	anyMember := uuid.New()
	items := []model.OrderItemModel{
		{OrderItemMemberID: &anyMember, OrderItemName: "Cheki Sinta"},
	}
	assert.Nil(t, service.CheckLineup(ev, items))
}

func TestCheckLineup_MemberDiLuarLineupDitolak(t *testing.T) {
	allowed := uuid.New()
	outsider := uuid.New()
	ev := specialEvent(allowed)

	items := []model.OrderItemModel{
		{OrderItemMemberID: &allowed, OrderItemName: "Cheki Maya"},
		{OrderItemMemberID: &outsider, OrderItemName: "Cheki Sinta"},
	}

	v := service.CheckLineup(ev, items)
	require.NotNil(t, v)
	assert.Equal(t, "RB Summer Special", v.EventName)
	assert.Equal(t, "Summer Night", v.ThemeName)
	assert.Equal(t, "#ff66aa", v.ThemeColor)
	assert.Equal(t, []string{"Cheki Sinta"}, v.Items)
	assert.Contains(t, v.Error(), "Cheki Sinta")
}

func TestCheckLineup_GroupSelaluLolos(t *testing.T) {
	ev := specialEvent(uuid.New())
	items := []model.OrderItemModel{
		{OrderItemMemberID: nil, OrderItemName: "Cheki Group"},
	}
	assert.Nil(t, service.CheckLineup(ev, items))
}

func TestCheckLineup_SemuaDalamLineup(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ev := specialEvent(a, b)
	items := []model.OrderItemModel{
		{OrderItemMemberID: &a, OrderItemName: "Cheki A"},
		{OrderItemMemberID: &b, OrderItemName: "Cheki B"},
	}
	assert.Nil(t, service.CheckLineup(ev, items))
}
