package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/examples/money"
	"patternlab/internal/registry"
	"patternlab/pkg/patterntypes"
)

func run(t *testing.T, name string) patterntypes.Result {
	t.Helper()
	for _, example := range Examples() {
		if example.Name == name {
			return example.Action()
		}
	}
	t.Fatalf("example %s not found", name)
	return patterntypes.Result{}
}

func TestExamples_AllPass(t *testing.T) {
	for _, example := range Examples() {
		t.Run(example.Name, func(t *testing.T) {
			assert.Equal(t, patterntypes.Structural, example.Category)
			result := example.Action()
			require.True(t, result.Succeeded, result.Message())
			assert.NotEmpty(t, result.Lines)
		})
	}
}

func TestRegister(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Register(reg))
	assert.Equal(t, []string{"Adapter", "Decorator", "Facade", "Proxy"}, reg.Names())
}

func TestLegacyAdapter(t *testing.T) {
	legacy := &LegacyGateway{}
	adapter := LegacyAdapter{Legacy: legacy}

	require.NoError(t, adapter.Charge("ACC-1", money.Cents(1205)))
	assert.Equal(t, []string{"legacy: 12.05 USD from ACC-1"}, legacy.Log)

	err := adapter.Charge("", money.Cents(100))
	require.Error(t, err)
	assert.Equal(t, "legacy gateway declined payment (code 51)", err.Error())

	result := run(t, "Adapter")
	assert.Equal(t, []string{
		"checkout charged $19.99 to ACC-42",
		"checkout failed: legacy gateway declined payment (code 51)",
		"legacy: 19.99 USD from ACC-42",
	}, result.Lines)
}

func TestDecorator(t *testing.T) {
	message := Signature{Message: Greeting{Message: PlainMessage("hi"), Name: "Bo"}, Sender: "Ops"}
	assert.Equal(t, "Hello Bo, hi -- Ops", message.Text())
	assert.Equal(t, "HELLO BO, HI -- OPS", Urgent{Message: message}.Text())

	result := run(t, "Decorator")
	assert.Equal(t, "urgent: HELLO ALICE, YOUR ORDER HAS SHIPPED -- SUPPORT", result.Lines[3])
}

func TestOrderFacade(t *testing.T) {
	store := NewOrderFacade()

	confirmation, err := store.PlaceOrder("kettle", 1)
	require.NoError(t, err)
	assert.Equal(t, "SHIP-001: 1 x kettle charged $29.99", confirmation)

	_, err = store.PlaceOrder("mug", 5)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, money.Cents(2999), store.Charged(), "failed orders are not charged")

	result := run(t, "Facade")
	assert.Equal(t, []string{
		"✓ SHIP-001: 2 x kettle charged $59.98",
		"⚠ order rejected: out of stock: mug (have 1, want 2)",
		"✓ SHIP-002: 1 x mug charged $8.50",
		"total charged: $68.48",
	}, result.Lines)
}

func TestDocumentProxy(t *testing.T) {
	archive := NewArchiveStore(map[string]string{"a": "doc"})
	proxy := NewDocumentProxy(archive, "alice")

	for range 3 {
		doc, err := proxy.Load("alice", "a")
		require.NoError(t, err)
		assert.Equal(t, "doc", doc)
	}
	assert.Equal(t, 1, archive.Loads)

	_, err := proxy.Load("eve", "a")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 1, archive.Loads, "denied requests never reach the store")

	result := run(t, "Proxy")
	assert.Equal(t, "archive loads: 2", result.Lines[len(result.Lines)-1])
}
