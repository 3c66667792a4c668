package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射接口应指向同一份数据
	raw, ok := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !ok || raw.(*testPositionComponent) != pos {
		t.Error("Reflection and generic access should return the same pointer")
	}

	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Should not have velocity component")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestAddComponentToMissingEntityIsIgnored(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(42), &testPositionComponent{})
	if em.Exists(42) {
		t.Error("AddComponent must not create entities")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity components should still be readable before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 0 {
		t.Errorf("Marked entity should be excluded from queries, got %v", got)
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Mark should be cleared after cleanup")
	}
}

func TestGetEntitiesWithIsSortedAscending(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%3 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
			want = append(want, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Result not in ascending order at %d: got %v", i, got)
		}
	}

	if n := CountEntitiesWith1[*testVelocityComponent](em); n != len(want) {
		t.Errorf("CountEntitiesWith1 = %d, want %d", n, len(want))
	}
}

func TestGetEntitiesWithCombinations(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})
	AddComponent(em, id1, &testTagComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"position", GetEntitiesWith1[*testPositionComponent](em), []EntityID{id1, id2}},
		{"velocity", GetEntitiesWith1[*testVelocityComponent](em), []EntityID{id1, id3}},
		{"position+velocity", GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em), []EntityID{id1}},
		{"all three", GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em), []EntityID{id1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	em.CreateEntity()
	em.DestroyEntity(a)

	em.Clear()
	if em.EntityCount() != 0 {
		t.Errorf("Expected empty manager after Clear, got %d", em.EntityCount())
	}
	if em.RemoveMarkedEntities() != 0 {
		t.Error("Clear should drop pending destroy marks")
	}

	c := em.CreateEntity()
	if c <= 2 {
		t.Errorf("IDs must not be reused after Clear, got %d", c)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 500; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
