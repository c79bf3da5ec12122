package maze

var orthoDirs = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// ShortestPath returns a 4-connected path of Open cells from start to end,
// both included, or nil when either end is blocked or no path exists.
// It only reports reachability; generated grids are never patched.
func ShortestPath(g Grid, start, end Point) []Point {
	if !g.InBounds(start.Y, start.X) || !g.InBounds(end.Y, end.X) {
		return nil
	}
	if g.IsWall(start.Y, start.X) || g.IsWall(end.Y, end.X) {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	visited := make(map[Point]bool)
	visited[start] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Point{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			reverse(path)
			return path
		}

		for _, d := range orthoDirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if visited[next] || g.IsWall(next.Y, next.X) {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

func reverse(path []Point) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
