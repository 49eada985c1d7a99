// Package ecs 提供以反射类型为键的实体-组件存储
//
// 系统只通过 EntityID 互相引用实体，从不持有组件指针跨帧保存。
// 删除是延迟的：帧内只做标记，由 Match 在阶段之间统一清理。
package ecs

import "reflect"

// EntityID 是实体的唯一标识符，0 保留为 InvalidEntity
type EntityID uint64

// InvalidEntity 空句柄，接触状态、冰冻来源等引用字段用它表示"没有实体"
const InvalidEntity EntityID = 0

// componentSet 单个实体的组件表：组件指针类型 -> 组件实例
type componentSet map[reflect.Type]any

// EntityManager 管理所有实体和组件
//
// 查询按实体创建顺序返回，相同输入下每帧的遍历顺序完全一致。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]componentSet
	// order 按创建顺序排列的实体（含待删除的）
	order []EntityID

	// entitiesToDestroy 本阶段标记删除的实体，按标记顺序
	entitiesToDestroy []EntityID
	pendingDestroy    map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:         1,
		components:     make(map[EntityID]componentSet),
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID，ID 从不复用
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(componentSet)
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除，RemoveMarkedEntities 时才真正移除
//
// 对不存在或已标记的实体调用是空操作，因此同一帧内多颗子弹
// 击杀同一个僵尸只会清理一次。
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists || em.IsPendingDestroy(id) {
		return
	}
	em.pendingDestroy[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsPendingDestroy 实体是否已被标记删除
func (em *EntityManager) IsPendingDestroy(id EntityID) bool {
	_, pending := em.pendingDestroy[id]
	return pending
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if id == InvalidEntity {
		return false
	}
	_, exists := em.components[id]
	return exists && !em.IsPendingDestroy(id)
}

// AddComponent 为实体添加组件，同类型的旧组件被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if set, exists := em.components[id]; exists {
		set[reflect.TypeOf(component)] = component
	}
}

func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if set, exists := em.components[id]; exists {
		delete(set, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, found := em.components[id][componentType]
	return comp, found
}

func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.components[id][componentType]
	return found
}

// RemoveMarkedEntities 移除所有已标记的实体，其余实体的相对顺序不变
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}

	kept := em.order[:0]
	for _, id := range em.order {
		if !em.IsPendingDestroy(id) {
			kept = append(kept, id)
		}
	}
	em.order = kept

	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	clear(em.pendingDestroy)
}

// EntityCount 当前实体数量（包括待删除的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// Clear 删除所有实体，ID 计数不重置
func (em *EntityManager) Clear() {
	clear(em.components)
	em.order = em.order[:0]
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	clear(em.pendingDestroy)
}

// GetEntitiesWith 查询同时拥有所有指定组件的实体
//
// 返回新分配的切片（按创建顺序），调用方可以在遍历时创建或标记删除实体。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for _, id := range em.order {
		if em.hasAll(em.components[id], componentTypes) {
			result = append(result, id)
		}
	}
	return result
}

func (em *EntityManager) hasAll(set componentSet, componentTypes []reflect.Type) bool {
	for _, ct := range componentTypes {
		if _, found := set[ct]; !found {
			return false
		}
	}
	return true
}
