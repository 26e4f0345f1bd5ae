package name

// Truncate 把标签压到limit个字符以内。超长时优先做中段截断：
// 保留方法前缀（到"-/"分界为止）和最后一个路径段，中间用"/..."连接；
// 预算不足或没有可用的分界时退化为平切加省略号。
// 预算固定为分界符预留4个字符，limit接近下界时预算可能为负，
// 此时总是落入平切分支。
func Truncate(label string, limit int) string {
	r := []rune(label)
	if len(r) <= limit {
		return label
	}

	pivot := pivotIndex(r)
	var head, tailSrc []rune
	if pivot >= 0 {
		head = r[:pivot+1]
		tailSrc = r[pivot+1:]
	} else {
		tailSrc = r
	}

	slash := lastSlash(tailSrc)
	if slash > 0 && slash < len(tailSrc)-1 {
		tail := tailSrc[slash:]
		budget := limit - len(head) - 4 - len(tail)
		if budget > 4 {
			return string(head) + string(tailSrc[:budget]) + "/..." + string(tail)
		}
	}
	return string(r[:limit-1]) + "…"
}

// pivotIndex 返回首个"-/"中'-'的下标，未找到返回-1
func pivotIndex(r []rune) int {
	for i := 0; i+1 < len(r); i++ {
		if r[i] == '-' && r[i+1] == '/' {
			return i
		}
	}
	return -1
}

func lastSlash(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == '/' {
			return i
		}
	}
	return -1
}
