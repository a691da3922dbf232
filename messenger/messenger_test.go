package messenger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyFansOutInOrder(t *testing.T) {
	m := New(nil)
	var got []string
	m.Subscribe(BossDamage, func(Type, any) { got = append(got, "a") })
	m.Subscribe(BossDamage, func(Type, any) { got = append(got, "b") })
	m.Subscribe(PlayerDeath, func(Type, any) { got = append(got, "other") })

	m.Notify(BossDamage, Damage{Ratio: 0.5})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	m := New(nil)
	calls := 0
	var unsub func()
	unsub = m.Subscribe(CameraShake, func(Type, any) {
		calls++
		unsub()
	})
	second := 0
	m.Subscribe(CameraShake, func(Type, any) { second++ })

	m.Notify(CameraShake, Shake{Amount: 1})
	m.Notify(CameraShake, Shake{Amount: 1})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, second)
}

func TestListenTyped(t *testing.T) {
	m := New(nil)
	var ratios []float64
	Listen(m, BossDamage, func(d Damage) { ratios = append(ratios, d.Ratio) })

	m.Notify(BossDamage, Damage{Ratio: 0.7})
	m.Notify(BossDamage, "not a damage payload")
	assert.Equal(t, []float64{0.7}, ratios)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "create_charge_effect", CreateChargeEffect.String())
	assert.Equal(t, "message(200)", Type(200).String())
}
