package service

import (
	"gorm.io/gorm"
)

// displayOrderAsc 是所有可排序集合的统一读取顺序。
// 以 id 作为第二排序键，保证 display_order 相同时结果依然稳定。
const displayOrderAsc = "display_order ASC, id ASC"

// applyDisplayOrder 在事务中按给定顺序依次重写 display_order。
// 传入的 IDs 会被依次赋值 0,1,2...，未包含的条目保持原排序。
func applyDisplayOrder(tx *gorm.DB, model interface{}, ids []uint) error {
	for index, id := range ids {
		if err := tx.Model(model).Where("id = ?", id).Update("display_order", index).Error; err != nil {
			return err
		}
	}
	return nil
}

// nextDisplayOrder 返回集合尾部的下一个排序值，空集合从 0 开始。
func nextDisplayOrder(gdb *gorm.DB, model interface{}) (int, error) {
	var maxOrder int
	if err := gdb.Model(model).Select("COALESCE(MAX(display_order), -1)").Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}
