package ecs

import (
	"reflect"
	"testing"
)

type testBodyComponent struct {
	X, Y float64
}

type testMotionComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

var (
	bodyType   = reflect.TypeOf(&testBodyComponent{})
	motionType = reflect.TypeOf(&testMotionComponent{})
	tagType    = reflect.TypeOf(&testTagComponent{})
)

// TestCreateEntityIDs ID 从 1 开始单调递增，Clear 后也不复用
func TestCreateEntityIDs(t *testing.T) {
	em := NewEntityManager()
	first := em.CreateEntity()
	second := em.CreateEntity()

	if first == InvalidEntity || first != 1 || second != 2 {
		t.Fatalf("Expected IDs 1 and 2, got %d and %d", first, second)
	}

	em.Clear()
	if em.EntityCount() != 0 {
		t.Errorf("Expected no entities after Clear, got %d", em.EntityCount())
	}
	if third := em.CreateEntity(); third != 3 {
		t.Errorf("IDs should not be reused after Clear, got %d", third)
	}
}

func TestComponentStorage(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, bodyType) {
		t.Fatal("Fresh entity should have no components")
	}

	em.AddComponent(id, &testBodyComponent{X: 100, Y: 200})
	em.AddComponent(id, &testMotionComponent{VX: 5, VY: -3})

	comp, ok := em.GetComponent(id, bodyType)
	if !ok {
		t.Fatal("Body component should be found")
	}
	if body := comp.(*testBodyComponent); body.X != 100 || body.Y != 200 {
		t.Errorf("Expected body (100, 200), got (%v, %v)", body.X, body.Y)
	}

	// 同类型组件再次添加时覆盖
	em.AddComponent(id, &testMotionComponent{VX: 1})
	comp, _ = em.GetComponent(id, motionType)
	if motion := comp.(*testMotionComponent); motion.VX != 1 || motion.VY != 0 {
		t.Errorf("Expected replaced motion (1, 0), got (%v, %v)", motion.VX, motion.VY)
	}

	em.RemoveComponent(id, motionType)
	if em.HasComponent(id, motionType) {
		t.Error("Motion component should be removed")
	}
	if !em.HasComponent(id, bodyType) {
		t.Error("Removing one component should keep the others")
	}

	// 不存在的实体上的操作都是空操作
	em.AddComponent(999, &testBodyComponent{})
	if em.HasComponent(999, bodyType) {
		t.Error("Unknown entity should not gain components")
	}
}

func TestGetEntitiesWithFilters(t *testing.T) {
	em := NewEntityManager()

	moving := em.CreateEntity()
	em.AddComponent(moving, &testBodyComponent{})
	em.AddComponent(moving, &testMotionComponent{})

	static := em.CreateEntity()
	em.AddComponent(static, &testBodyComponent{})
	em.AddComponent(static, &testTagComponent{})

	ghost := em.CreateEntity()
	em.AddComponent(ghost, &testMotionComponent{})

	tests := []struct {
		name  string
		types []reflect.Type
		want  []EntityID
	}{
		{"body", []reflect.Type{bodyType}, []EntityID{moving, static}},
		{"motion", []reflect.Type{motionType}, []EntityID{moving, ghost}},
		{"body and motion", []reflect.Type{bodyType, motionType}, []EntityID{moving}},
		{"body and tag", []reflect.Type{bodyType, tagType}, []EntityID{static}},
		{"all three", []reflect.Type{bodyType, motionType, tagType}, []EntityID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := em.GetEntitiesWith(tt.types...)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

// TestDeferredDestroy 标记删除的实体在清理前仍可访问，但不再存活
func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	ids := []EntityID{em.CreateEntity(), em.CreateEntity(), em.CreateEntity()}
	for _, id := range ids {
		em.AddComponent(id, &testBodyComponent{})
	}

	em.DestroyEntity(ids[0])
	em.DestroyEntity(ids[2])

	for _, id := range []EntityID{ids[0], ids[2]} {
		if !em.HasComponent(id, bodyType) {
			t.Errorf("Entity %d should keep its components until cleanup", id)
		}
		if em.IsAlive(id) {
			t.Errorf("Entity %d should not be alive once marked", id)
		}
	}

	em.RemoveMarkedEntities()

	if got := em.GetEntitiesWith(bodyType); len(got) != 1 || got[0] != ids[1] {
		t.Errorf("Expected only %d to survive, got %v", ids[1], got)
	}
	if !em.IsAlive(ids[1]) {
		t.Error("Unmarked entity should stay alive")
	}
	if em.IsAlive(InvalidEntity) {
		t.Error("InvalidEntity is never alive")
	}
}

// TestDestroyEntityIdempotent 测试重复标记删除不会导致重复清理
func TestDestroyEntityIdempotent(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	em.DestroyEntity(id1)
	em.DestroyEntity(id1)

	if !em.IsPendingDestroy(id1) {
		t.Fatal("id1 should be pending destroy")
	}
	if em.IsAlive(id1) {
		t.Error("id1 should not be alive once marked")
	}
	if len(em.entitiesToDestroy) != 1 {
		t.Errorf("Expected 1 pending entry, got %d", len(em.entitiesToDestroy))
	}

	em.RemoveMarkedEntities()

	if em.IsPendingDestroy(id1) {
		t.Error("pending set should be cleared after cleanup")
	}
	if !em.IsAlive(id2) {
		t.Error("id2 should still be alive")
	}
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 entity, got %d", em.EntityCount())
	}

	// 已删除的实体再次标记不应有任何效果
	em.DestroyEntity(id1)
	if em.IsPendingDestroy(id1) {
		t.Error("destroying a removed entity should be a no-op")
	}
}

// TestGetEntitiesWithStableOrder 测试查询结果保持创建顺序
func TestGetEntitiesWithStableOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testBodyComponent{X: float64(i)})
		ids = append(ids, id)
	}

	// 删除中间的部分实体
	em.DestroyEntity(ids[3])
	em.DestroyEntity(ids[10])
	em.RemoveMarkedEntities()

	got := em.GetEntitiesWith(reflect.TypeOf(&testBodyComponent{}))
	if len(got) != 18 {
		t.Fatalf("Expected 18 entities, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Query order not ascending at %d: %v", i, got)
		}
	}
}

// TestGenericAccessors 测试泛型组件访问函数
func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testBodyComponent{X: 1, Y: 2})

	pos, ok := GetComponent[*testBodyComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the component")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Component data mismatch, got (%f, %f)", pos.X, pos.Y)
	}

	if !HasComponent[*testBodyComponent](em, id) {
		t.Error("HasComponent should return true")
	}
	if HasComponent[*testMotionComponent](em, id) {
		t.Error("HasComponent should return false for missing component")
	}

	AddComponent(em, id, &testMotionComponent{VX: 3})
	if got := GetEntitiesWith2[*testBodyComponent, *testMotionComponent](em); len(got) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(got))
	}

	RemoveComponent[*testMotionComponent](em, id)
	if got := GetEntitiesWith1[*testMotionComponent](em); len(got) != 0 {
		t.Errorf("Expected 0 entities after removal, got %d", len(got))
	}

	// 无效实体
	if _, ok := GetComponent[*testBodyComponent](em, InvalidEntity); ok {
		t.Error("InvalidEntity should never resolve to a component")
	}
}
